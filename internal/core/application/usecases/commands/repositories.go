// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"booking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// DistanceRepoFactory provides access to the distance repository within a transaction.
	DistanceRepoFactory interface {
		DistanceRepository() ports.DistanceRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used by the plain lifecycle commands (start, cancel, end, reopen).
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// DistanceUoW manages transactions for distance-only operations.
	DistanceUoW interface {
		TxManager
		DistanceRepoFactory
	}

	// DistanceUoWFactory creates new distance unit of work instances.
	DistanceUoWFactory interface {
		Create() DistanceUoW
	}

	// JobDistanceUoW manages transactions spanning the job and distance
	// aggregates. Used by job creation, which writes both atomically.
	JobDistanceUoW interface {
		TxManager
		JobRepoFactory
		DistanceRepoFactory
	}

	// JobDistanceUoWFactory creates new job+distance unit of work instances.
	JobDistanceUoWFactory interface {
		Create() JobDistanceUoW
	}

	// JobUserUoW manages transactions that read users while modifying jobs.
	// Used by accept, which checks translator eligibility before assignment.
	JobUserUoW interface {
		TxManager
		JobRepoFactory
		UserRepoFactory
	}

	// JobUserUoWFactory creates new job+user unit of work instances.
	JobUserUoWFactory interface {
		Create() JobUserUoW
	}
)
