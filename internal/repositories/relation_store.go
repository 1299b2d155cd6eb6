package repositories

import (
	"context"

	"github.com/asakaida/banken/internal/entities"
)

// BulkInsertResult reports how a bulk insert split between rows actually
// written and rows the upsert skipped because they were already present
type BulkInsertResult struct {
	Inserted       int // pairs newly stored
	AlreadyPresent int // pairs that already existed and were left untouched
}

// BulkDeleteResult reports how many pairs a bulk delete actually removed
// Requested pairs that were not stored contribute nothing to the count
type BulkDeleteResult struct {
	Removed int
}

// RelationOps is the operation set of an association store
// It is implemented by the store itself (each call independent) and by the
// transaction-bound view handed to WithLock callbacks
type RelationOps[L, R entities.ID] interface {
	// Exists reports whether the (left, right) pair is stored
	// Unknown IDs are not errors: the answer is simply false
	Exists(ctx context.Context, left L, right R) (bool, error)

	// ListRight returns all rights associated with left, ordered by right ID
	ListRight(ctx context.Context, left L) ([]R, error)

	// ListLeft returns all lefts associated with right, ordered by left ID
	ListLeft(ctx context.Context, right R) ([]L, error)

	// ListRightByLefts returns the stored pairs of all given lefts in a
	// single round trip
	ListRightByLefts(ctx context.Context, lefts []L) ([]entities.Pair[L, R], error)

	// ListLeftByRights returns the stored pairs of all given rights in a
	// single round trip
	ListLeftByRights(ctx context.Context, rights []R) ([]entities.Pair[L, R], error)

	// Insert stores the (left, right) pair
	// Returns nil if the pair already exists (idempotent)
	Insert(ctx context.Context, left L, right R) error

	// Delete removes the (left, right) pair
	// Returns nil if the pair does not exist
	Delete(ctx context.Context, left L, right R) error

	// BulkInsert stores every (left, rights[i]) pair atomically and reports
	// how many were new versus already present
	BulkInsert(ctx context.Context, left L, rights []R) (*BulkInsertResult, error)

	// BulkDelete removes every (left, rights[i]) pair atomically and reports
	// how many actually existed
	BulkDelete(ctx context.Context, left L, rights []R) (*BulkDeleteResult, error)
}

// RelationStore is the persistence interface for one association domain
// (user-role, role-permission, or service-role)
type RelationStore[L, R entities.ID] interface {
	RelationOps[L, R]

	// WithLock runs fn inside a transaction that holds the advisory lock
	// for left, serializing all WithLock writers of the same left key
	// The ops passed to fn are bound to that transaction and must not be
	// retained after fn returns
	WithLock(ctx context.Context, left L, fn func(ops RelationOps[L, R]) error) error
}

// The three association domains this service persists
type (
	UserRoleStore       = RelationStore[entities.UserID, entities.RoleID]
	RolePermissionStore = RelationStore[entities.RoleID, entities.PermissionID]
	ServiceRoleStore    = RelationStore[entities.ServiceID, entities.RoleID]
)
