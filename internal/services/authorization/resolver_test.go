package authorization

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
)

// fakeRelationStore is an in-memory RelationStore for resolver tests
type fakeRelationStore[L, R entities.ID] struct {
	data map[L][]R
	err  error
}

func (f *fakeRelationStore[L, R]) Exists(ctx context.Context, left L, right R) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.data[left] {
		if r == right {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRelationStore[L, R]) ListRight(ctx context.Context, left L) ([]R, error) {
	if f.err != nil {
		return nil, f.err
	}
	rights := append([]R(nil), f.data[left]...)
	sort.Slice(rights, func(i, j int) bool { return rights[i] < rights[j] })
	return rights, nil
}

func (f *fakeRelationStore[L, R]) ListLeft(ctx context.Context, right R) ([]L, error) {
	if f.err != nil {
		return nil, f.err
	}
	var lefts []L
	for left, rights := range f.data {
		for _, r := range rights {
			if r == right {
				lefts = append(lefts, left)
				break
			}
		}
	}
	sort.Slice(lefts, func(i, j int) bool { return lefts[i] < lefts[j] })
	return lefts, nil
}

func (f *fakeRelationStore[L, R]) ListRightByLefts(ctx context.Context, lefts []L) ([]entities.Pair[L, R], error) {
	if f.err != nil {
		return nil, f.err
	}
	var pairs []entities.Pair[L, R]
	for _, left := range lefts {
		for _, right := range f.data[left] {
			pairs = append(pairs, entities.Pair[L, R]{Left: left, Right: right})
		}
	}
	return pairs, nil
}

func (f *fakeRelationStore[L, R]) ListLeftByRights(ctx context.Context, rights []R) ([]entities.Pair[L, R], error) {
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

func (f *fakeRelationStore[L, R]) Insert(ctx context.Context, left L, right R) error {
	f.data[left] = append(f.data[left], right)
	return nil
}

func (f *fakeRelationStore[L, R]) Delete(ctx context.Context, left L, right R) error {
	return nil
}

func (f *fakeRelationStore[L, R]) BulkInsert(ctx context.Context, left L, rights []R) (*repositories.BulkInsertResult, error) {
	return &repositories.BulkInsertResult{}, nil
}

func (f *fakeRelationStore[L, R]) BulkDelete(ctx context.Context, left L, rights []R) (*repositories.BulkDeleteResult, error) {
	return &repositories.BulkDeleteResult{}, nil
}

func (f *fakeRelationStore[L, R]) WithLock(ctx context.Context, left L, fn func(ops repositories.RelationOps[L, R]) error) error {
	return fn(f)
}

func newTestResolver() *Resolver {
	userRoles := &fakeRelationStore[entities.UserID, entities.RoleID]{
		data: map[entities.UserID][]entities.RoleID{
			"alice": {"admin", "editor"},
			"bob":   {"viewer"},
			"carol": {"editor", "viewer"},
		},
	}
	rolePerms := &fakeRelationStore[entities.RoleID, entities.PermissionID]{
		data: map[entities.RoleID][]entities.PermissionID{
			"admin":  {"user:manage", "document:write"},
			"editor": {"document:write", "document:read"},
			"viewer": {"document:read"},
		},
	}
	return NewResolver(userRoles, rolePerms)
}

func TestResolver_UserRoles(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		name string
		user entities.UserID
		want []entities.RoleID
	}{
		{
			name: "user with roles",
			user: "alice",
			want: []entities.RoleID{"admin", "editor"},
		},
		{
			name: "unknown user gets empty list",
			user: "nobody",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.UserRoles(context.Background(), tt.user)
			if err != nil {
				t.Fatalf("UserRoles() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UserRoles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolver_HasRole(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		name string
		user entities.UserID
		role entities.RoleID
		want bool
	}{
		{name: "held role", user: "alice", role: "admin", want: true},
		{name: "unheld role", user: "bob", role: "admin", want: false},
		{name: "unknown user", user: "nobody", role: "admin", want: false},
		{name: "unknown role", user: "alice", role: "ghost", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.HasRole(context.Background(), tt.user, tt.role)
			if err != nil {
				t.Fatalf("HasRole() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolver_RolePermissions(t *testing.T) {
	resolver := newTestResolver()

	got, err := resolver.RolePermissions(context.Background(), "editor")
	if err != nil {
		t.Fatalf("RolePermissions() error = %v", err)
	}
	want := []entities.PermissionID{"document:read", "document:write"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RolePermissions() = %v, want %v", got, want)
	}
}

func TestResolver_UserPermissions(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		name string
		user entities.UserID
		want []entities.PermissionID
	}{
		{
			name: "union across roles with dedup",
			user: "alice",
			want: []entities.PermissionID{"document:read", "document:write", "user:manage"},
		},
		{
			name: "single role",
			user: "bob",
			want: []entities.PermissionID{"document:read"},
		},
		{
			name: "overlapping roles deduplicate",
			user: "carol",
			want: []entities.PermissionID{"document:read", "document:write"},
		},
		{
			name: "unknown user gets empty list",
			user: "nobody",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.UserPermissions(context.Background(), tt.user)
			if err != nil {
				t.Fatalf("UserPermissions() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UserPermissions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolver_HasPermission(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		name string
		user entities.UserID
		perm entities.PermissionID
		want bool
	}{
		{name: "granted through admin role", user: "alice", perm: "user:manage", want: true},
		{name: "granted through second role", user: "alice", perm: "document:read", want: true},
		{name: "not granted", user: "bob", perm: "user:manage", want: false},
		{name: "unknown user", user: "nobody", perm: "document:read", want: false},
		{name: "unknown permission", user: "alice", perm: "ghost:perm", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.HasPermission(context.Background(), tt.user, tt.perm)
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolver_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	userRoles := &fakeRelationStore[entities.UserID, entities.RoleID]{err: storeErr}
	rolePerms := &fakeRelationStore[entities.RoleID, entities.PermissionID]{}
	resolver := NewResolver(userRoles, rolePerms)

	if _, err := resolver.UserRoles(context.Background(), "alice"); !errors.Is(err, storeErr) {
		t.Errorf("UserRoles() error = %v, want wrapped %v", err, storeErr)
	}
	if _, err := resolver.HasPermission(context.Background(), "alice", "document:read"); !errors.Is(err, storeErr) {
		t.Errorf("HasPermission() error = %v, want wrapped %v", err, storeErr)
	}
}
