package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
	"github.com/asakaida/banken/internal/services/authorization"
	"github.com/asakaida/banken/internal/services/relation"
)

// fakeStore is an in-memory RelationStore wired under the router in tests
type fakeStore[L, R entities.ID] struct {
	data map[L]map[R]bool
	err  error // every operation fails with err when set
}

func newFakeStore[L, R entities.ID]() *fakeStore[L, R] {
	return &fakeStore[L, R]{data: make(map[L]map[R]bool)}
}

func (f *fakeStore[L, R]) seed(left L, rights ...R) {
	if f.data[left] == nil {
		f.data[left] = make(map[R]bool)
	}
	for _, right := range rights {
		f.data[left][right] = true
	}
}

func (f *fakeStore[L, R]) Exists(ctx context.Context, left L, right R) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.data[left][right], nil
}

func (f *fakeStore[L, R]) ListRight(ctx context.Context, left L) ([]R, error) {
	if f.err != nil {
		return nil, f.err
	}
	var rights []R
	for right := range f.data[left] {
		rights = append(rights, right)
	}
	sort.Slice(rights, func(i, j int) bool { return rights[i] < rights[j] })
	return rights, nil
}

func (f *fakeStore[L, R]) ListLeft(ctx context.Context, right R) ([]L, error) {
	if f.err != nil {
		return nil, f.err
	}
	var lefts []L
	for left, rights := range f.data {
		if rights[right] {
			lefts = append(lefts, left)
		}
	}
	sort.Slice(lefts, func(i, j int) bool { return lefts[i] < lefts[j] })
	return lefts, nil
}

func (f *fakeStore[L, R]) ListRightByLefts(ctx context.Context, lefts []L) ([]entities.Pair[L, R], error) {
	if f.err != nil {
		return nil, f.err
	}
	var pairs []entities.Pair[L, R]
	for _, left := range lefts {
		rights, _ := f.ListRight(ctx, left)
		for _, right := range rights {
			pairs = append(pairs, entities.Pair[L, R]{Left: left, Right: right})
		}
	}
	return pairs, nil
}

func (f *fakeStore[L, R]) ListLeftByRights(ctx context.Context, rights []R) ([]entities.Pair[L, R], error) {
	if f.err != nil {
		return nil, f.err
	}
	var pairs []entities.Pair[L, R]
	for _, right := range rights {
		lefts, _ := f.ListLeft(ctx, right)
		for _, left := range lefts {
			pairs = append(pairs, entities.Pair[L, R]{Left: left, Right: right})
		}
	}
	return pairs, nil
}

func (f *fakeStore[L, R]) Insert(ctx context.Context, left L, right R) error {
	if f.err != nil {
		return f.err
	}
	f.seed(left, right)
	return nil
}

func (f *fakeStore[L, R]) Delete(ctx context.Context, left L, right R) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data[left], right)
	return nil
}

func (f *fakeStore[L, R]) BulkInsert(ctx context.Context, left L, rights []R) (*repositories.BulkInsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := &repositories.BulkInsertResult{}
	for _, right := range rights {
		if f.data[left][right] {
			result.AlreadyPresent++
			continue
		}
		f.seed(left, right)
		result.Inserted++
	}
	return result, nil
}

func (f *fakeStore[L, R]) BulkDelete(ctx context.Context, left L, rights []R) (*repositories.BulkDeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := &repositories.BulkDeleteResult{}
	for _, right := range rights {
		if f.data[left][right] {
			delete(f.data[left], right)
			result.Removed++
		}
	}
	return result, nil
}

func (f *fakeStore[L, R]) WithLock(ctx context.Context, left L, fn func(ops repositories.RelationOps[L, R]) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(f)
}

type fakeHealth struct {
	err error
}

func (f *fakeHealth) HealthCheck(ctx context.Context) error {
	return f.err
}

// testEnv bundles a router with the fakes underneath it. The guard treats
// the "admin" role as administrative.
type testEnv struct {
	router       http.Handler
	userRoles    *fakeStore[entities.UserID, entities.RoleID]
	rolePerms    *fakeStore[entities.RoleID, entities.PermissionID]
	serviceRoles *fakeStore[entities.ServiceID, entities.RoleID]
	health       *fakeHealth
}

func newTestEnv() *testEnv {
	userRoles := newFakeStore[entities.UserID, entities.RoleID]()
	rolePerms := newFakeStore[entities.RoleID, entities.PermissionID]()
	serviceRoles := newFakeStore[entities.ServiceID, entities.RoleID]()
	health := &fakeHealth{}

	resolver := authorization.NewResolver(userRoles, rolePerms)
	handler := NewHandler(HandlerParams{
		Logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRoles:           userRoles,
		RolePermissions:     rolePerms,
		ServiceRoles:        serviceRoles,
		RoleReplacer:        relation.NewReplacer[entities.UserID, entities.RoleID](userRoles),
		PermissionReplacer:  relation.NewReplacer[entities.RoleID, entities.PermissionID](rolePerms),
		ServiceRoleReplacer: relation.NewReplacer[entities.ServiceID, entities.RoleID](serviceRoles),
		Resolver:            resolver,
		Guard:               authorization.NewGuard(resolver, []entities.RoleID{"admin"}),
		Health:              health,
	})

	return &testEnv{
		router:       NewRouter(handler, nil),
		userRoles:    userRoles,
		rolePerms:    rolePerms,
		serviceRoles: serviceRoles,
		health:       health,
	}
}

// seedAdmin grants the admin role to the given caller.
func (e *testEnv) seedAdmin(user entities.UserID) {
	e.userRoles.seed(user, "admin")
}
