package relation

import (
	"context"
	"fmt"
	"sort"

	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
)

// ReplaceResult describes the difference a replace applied
type ReplaceResult[R entities.ID] struct {
	Added     []R // rights newly associated
	Removed   []R // rights that were associated and no longer are
	Unchanged []R // rights that were already associated and stayed
}

// ReplacerInterface defines the interface for atomic right-set replacement
type ReplacerInterface[L, R entities.ID] interface {
	Replace(ctx context.Context, left L, desired []R) (*ReplaceResult[R], error)
}

// Replacer swaps the full stored right-set of a left key for a desired set
type Replacer[L, R entities.ID] struct {
	store repositories.RelationStore[L, R]
}

// NewReplacer creates a new Replacer over store
func NewReplacer[L, R entities.ID](store repositories.RelationStore[L, R]) *Replacer[L, R] {
	return &Replacer[L, R]{store: store}
}

// Replace makes the stored right-set of left equal to set(desired) and
// reports what was added, removed, and left in place. An empty desired set
// removes every association of left. Duplicates in desired are collapsed.
//
// The diff is computed and applied under the store's per-left lock, so
// concurrent replaces of the same left serialize and the final state is
// always exactly one caller's desired set.
func (r *Replacer[L, R]) Replace(ctx context.Context, left L, desired []R) (*ReplaceResult[R], error) {
	want := dedupe(desired)

	result := &ReplaceResult[R]{}
	err := r.store.WithLock(ctx, left, func(ops repositories.RelationOps[L, R]) error {
		current, err := ops.ListRight(ctx, left)
		if err != nil {
			return fmt.Errorf("failed to read current set: %w", err)
		}

		has := make(map[R]bool, len(current))
		for _, right := range current {
			has[right] = true
		}
		keep := make(map[R]bool, len(want))
		for _, right := range want {
			keep[right] = true
		}

		var toAdd, toRemove, unchanged []R
		for _, right := range want {
			if has[right] {
				unchanged = append(unchanged, right)
			} else {
				toAdd = append(toAdd, right)
			}
		}
		for _, right := range current {
			if !keep[right] {
				toRemove = append(toRemove, right)
			}
		}

		if _, err := ops.BulkDelete(ctx, left, toRemove); err != nil {
			return err
		}
		if _, err := ops.BulkInsert(ctx, left, toAdd); err != nil {
			return err
		}

		sortIDs(toAdd)
		sortIDs(toRemove)
		sortIDs(unchanged)
		result.Added = toAdd
		result.Removed = toRemove
		result.Unchanged = unchanged
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func dedupe[R entities.ID](ids []R) []R {
	seen := make(map[R]bool, len(ids))
	out := make([]R, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func sortIDs[R entities.ID](ids []R) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
