package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Accounts are provisioned elsewhere; the booking flows mostly read.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetTranslatorsByLanguage retrieves all users with the translator role
	// whose skill set includes the language. Domain-level eligibility
	// (ownership exclusion) is applied by services.TranslatorMatcher on top.
	GetTranslatorsByLanguage(ctx context.Context, language kernel.Language) ([]*user.User, error)
}
