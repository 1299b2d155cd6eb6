package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
	"github.com/lib/pq"
)

// Domain describes one association table: its name, its two key columns,
// and the advisory lock namespace used to serialize writers of a left key
type Domain struct {
	Table    string
	LeftCol  string
	RightCol string
	LockNS   int32
}

// The three association domains backed by PostgreSQL tables
var (
	UserRoles       = Domain{Table: "user_roles", LeftCol: "user_id", RightCol: "role_id", LockNS: 1}
	RolePermissions = Domain{Table: "role_permissions", LeftCol: "role_id", RightCol: "permission_id", LockNS: 2}
	ServiceRoles    = Domain{Table: "service_roles", LeftCol: "service_id", RightCol: "role_id", LockNS: 3}
)

// queryer is the subset of *sql.DB and *sql.Tx the store runs on
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Store implements repositories.RelationStore for one association domain
// using PostgreSQL
type Store[L, R entities.ID] struct {
	db   *sql.DB
	view relView[L, R]
}

// New creates a relation store over db for the given domain
func New[L, R entities.ID](db *sql.DB, dom Domain) *Store[L, R] {
	return &Store[L, R]{db: db, view: relView[L, R]{q: db, dom: dom}}
}

// NewUserRoleStore creates the user-role association store
func NewUserRoleStore(db *sql.DB) repositories.UserRoleStore {
	return New[entities.UserID, entities.RoleID](db, UserRoles)
}

// NewRolePermissionStore creates the role-permission association store
func NewRolePermissionStore(db *sql.DB) repositories.RolePermissionStore {
	return New[entities.RoleID, entities.PermissionID](db, RolePermissions)
}

// NewServiceRoleStore creates the service-role association store
func NewServiceRoleStore(db *sql.DB) repositories.ServiceRoleStore {
	return New[entities.ServiceID, entities.RoleID](db, ServiceRoles)
}

// Exists reports whether the (left, right) pair is stored
func (s *Store[L, R]) Exists(ctx context.Context, left L, right R) (bool, error) {
	return s.view.Exists(ctx, left, right)
}

// ListRight returns all rights associated with left, ordered by right ID
func (s *Store[L, R]) ListRight(ctx context.Context, left L) ([]R, error) {
	return s.view.ListRight(ctx, left)
}

// ListLeft returns all lefts associated with right, ordered by left ID
func (s *Store[L, R]) ListLeft(ctx context.Context, right R) ([]L, error) {
	return s.view.ListLeft(ctx, right)
}

// ListRightByLefts returns the stored pairs of all given lefts in a single
// round trip
func (s *Store[L, R]) ListRightByLefts(ctx context.Context, lefts []L) ([]entities.Pair[L, R], error) {
	return s.view.ListRightByLefts(ctx, lefts)
}

// ListLeftByRights returns the stored pairs of all given rights in a single
// round trip
func (s *Store[L, R]) ListLeftByRights(ctx context.Context, rights []R) ([]entities.Pair[L, R], error) {
	return s.view.ListLeftByRights(ctx, rights)
}

// Insert stores the (left, right) pair
// Returns nil if the pair already exists (idempotent)
func (s *Store[L, R]) Insert(ctx context.Context, left L, right R) error {
	return s.view.Insert(ctx, left, right)
}

// Delete removes the (left, right) pair
// Returns nil if the pair does not exist
func (s *Store[L, R]) Delete(ctx context.Context, left L, right R) error {
	return s.view.Delete(ctx, left, right)
}

// BulkInsert stores every (left, rights[i]) pair in a single transaction
func (s *Store[L, R]) BulkInsert(ctx context.Context, left L, rights []R) (*repositories.BulkInsertResult, error) {
	if len(rights) == 0 {
		return &repositories.BulkInsertResult{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := s.txView(tx).BulkInsert(ctx, left, rights)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// BulkDelete removes every (left, rights[i]) pair in a single transaction
func (s *Store[L, R]) BulkDelete(ctx context.Context, left L, rights []R) (*repositories.BulkDeleteResult, error) {
	if len(rights) == 0 {
		return &repositories.BulkDeleteResult{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := s.txView(tx).BulkDelete(ctx, left, rights)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// WithLock runs fn inside a transaction holding the advisory lock for left.
// pg_advisory_xact_lock releases with the transaction, so all WithLock
// writers of the same (domain, left) execute strictly one after another.
func (s *Store[L, R]) WithLock(ctx context.Context, left L, fn func(ops repositories.RelationOps[L, R]) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT pg_advisory_xact_lock($1, hashtext($2))`
	if _, err := tx.ExecContext(ctx, lockQuery, s.view.dom.LockNS, string(left)); err != nil {
		return fmt.Errorf("failed to acquire advisory lock: %w", err)
	}

	if err := fn(s.txView(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Store[L, R]) txView(tx *sql.Tx) *relView[L, R] {
	return &relView[L, R]{q: tx, dom: s.view.dom}
}

// relView implements the operation set against either the pool or a live
// transaction. Bulk methods run their statements on q as-is, so on a
// transaction-bound view they join that transaction.
type relView[L, R entities.ID] struct {
	q   queryer
	dom Domain
}

func (v *relView[L, R]) Exists(ctx context.Context, left L, right R) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS(
			SELECT 1 FROM %s
			WHERE %s = $1 AND %s = $2
		)
	`, v.dom.Table, v.dom.LeftCol, v.dom.RightCol)

	var exists bool
	err := v.q.QueryRowContext(ctx, query, string(left), string(right)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", v.dom.Table, err)
	}

	return exists, nil
}

func (v *relView[L, R]) ListRight(ctx context.Context, left L) ([]R, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s
	`, v.dom.RightCol, v.dom.Table, v.dom.LeftCol, v.dom.RightCol)

	rows, err := v.q.QueryContext(ctx, query, string(left))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", v.dom.RightCol, err)
	}
	defer rows.Close()

	var rights []R
	for rows.Next() {
		var right R
		if err := rows.Scan(&right); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", v.dom.RightCol, err)
		}
		rights = append(rights, right)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", v.dom.Table, err)
	}

	return rights, nil
}

func (v *relView[L, R]) ListLeft(ctx context.Context, right R) ([]L, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s
	`, v.dom.LeftCol, v.dom.Table, v.dom.RightCol, v.dom.LeftCol)

	rows, err := v.q.QueryContext(ctx, query, string(right))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", v.dom.LeftCol, err)
	}
	defer rows.Close()

	var lefts []L
	for rows.Next() {
		var left L
		if err := rows.Scan(&left); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", v.dom.LeftCol, err)
		}
		lefts = append(lefts, left)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", v.dom.Table, err)
	}

	return lefts, nil
}

func (v *relView[L, R]) ListRightByLefts(ctx context.Context, lefts []L) ([]entities.Pair[L, R], error) {
	if len(lefts) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`, v.dom.LeftCol, v.dom.RightCol, v.dom.Table, v.dom.LeftCol, v.dom.LeftCol, v.dom.RightCol)

	rows, err := v.q.QueryContext(ctx, query, pq.Array(idsToStrings(lefts)))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by %s: %w", v.dom.RightCol, v.dom.LeftCol, err)
	}
	defer rows.Close()

	return scanPairs[L, R](rows, v.dom)
}

func (v *relView[L, R]) ListLeftByRights(ctx context.Context, rights []R) ([]entities.Pair[L, R], error) {
	if len(rights) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`, v.dom.LeftCol, v.dom.RightCol, v.dom.Table, v.dom.RightCol, v.dom.LeftCol, v.dom.RightCol)

	rows, err := v.q.QueryContext(ctx, query, pq.Array(idsToStrings(rights)))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by %s: %w", v.dom.LeftCol, v.dom.RightCol, err)
	}
	defer rows.Close()

	return scanPairs[L, R](rows, v.dom)
}

func (v *relView[L, R]) Insert(ctx context.Context, left L, right R) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`, v.dom.Table, v.dom.LeftCol, v.dom.RightCol, v.dom.LeftCol, v.dom.RightCol)

	_, err := v.q.ExecContext(ctx, query, string(left), string(right))
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", v.dom.Table, err)
	}

	return nil
}

func (v *relView[L, R]) Delete(ctx context.Context, left L, right R) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2
	`, v.dom.Table, v.dom.LeftCol, v.dom.RightCol)

	_, err := v.q.ExecContext(ctx, query, string(left), string(right))
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", v.dom.Table, err)
	}

	return nil
}

func (v *relView[L, R]) BulkInsert(ctx context.Context, left L, rights []R) (*repositories.BulkInsertResult, error) {
	result := &repositories.BulkInsertResult{}
	if len(rights) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`, v.dom.Table, v.dom.LeftCol, v.dom.RightCol, v.dom.LeftCol, v.dom.RightCol)

	stmt, err := v.q.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, right := range rights {
		res, err := stmt.ExecContext(ctx, string(left), string(right))
		if err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", v.dom.Table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected > 0 {
			result.Inserted++
		} else {
			result.AlreadyPresent++
		}
	}

	return result, nil
}

func (v *relView[L, R]) BulkDelete(ctx context.Context, left L, rights []R) (*repositories.BulkDeleteResult, error) {
	result := &repositories.BulkDeleteResult{}
	if len(rights) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2
	`, v.dom.Table, v.dom.LeftCol, v.dom.RightCol)

	stmt, err := v.q.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, right := range rights {
		res, err := stmt.ExecContext(ctx, string(left), string(right))
		if err != nil {
			return nil, fmt.Errorf("failed to delete from %s: %w", v.dom.Table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to read affected rows: %w", err)
		}
		result.Removed += int(affected)
	}

	return result, nil
}

func scanPairs[L, R entities.ID](rows *sql.Rows, dom Domain) ([]entities.Pair[L, R], error) {
	var pairs []entities.Pair[L, R]
	for rows.Next() {
		var pair entities.Pair[L, R]
		if err := rows.Scan(&pair.Left, &pair.Right); err != nil {
			return nil, fmt.Errorf("failed to scan %s pair: %w", dom.Table, err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", dom.Table, err)
	}

	return pairs, nil
}

func idsToStrings[T entities.ID](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
