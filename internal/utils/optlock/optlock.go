// Package optlock implements the optimistic concurrency primitive used by every
// mutating operation on a versioned financial record. Correctness comes from a
// conditional `WHERE version = current` update, never from in-process locking.
package optlock

import (
	"context"
	"fmt"

	"github.com/stewardly/ledger_engine/internal/apperrors"
)

// ReadVersionFunc reads the entity's current persisted version.
type ReadVersionFunc func(ctx context.Context) (int64, error)

// ConditionalUpdateFunc performs an update scoped to `WHERE id = ? AND version = current`
// writing `version = current + 1` alongside the patch, and returns the number of rows
// affected. Zero rows means a concurrent writer won the race.
type ConditionalUpdateFunc func(ctx context.Context, currentVersion int64) (rowsAffected int64, err error)

// ValidateLock checks an expected version against the entity's current version.
// A nil expectedVersion means the caller opted out of version checking.
func ValidateLock(entityName string, currentVersion int64, expectedVersion *int64) error {
	if expectedVersion == nil {
		return nil
	}
	if currentVersion <= 0 {
		return fmt.Errorf("%w: %s has no version recorded", apperrors.ErrInvalidState, entityName)
	}
	if currentVersion != *expectedVersion {
		return fmt.Errorf("%w: %s was modified by another user (expected version %d, current %d)",
			apperrors.ErrConflict, entityName, *expectedVersion, currentVersion)
	}
	return nil
}

// Run executes a version-checked conditional update: it reads the current version,
// validates the caller's expected version, then applies the update guarded by the
// current version. If the guarded update affects zero rows, a concurrent writer won
// the race between read and write and the caller gets ErrConflict; the engine never
// retries on its own.
func Run(ctx context.Context, entityName, id string, expectedVersion *int64,
	readVersion ReadVersionFunc, update ConditionalUpdateFunc) error {

	currentVersion, err := readVersion(ctx)
	if err != nil {
		return err
	}

	if err := ValidateLock(entityName, currentVersion, expectedVersion); err != nil {
		return err
	}

	rows, err := update(ctx, currentVersion)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s %s was concurrently modified", apperrors.ErrConflict, entityName, id)
	}
	return nil
}
