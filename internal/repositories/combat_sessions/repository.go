// Package combatsessions persists combat sessions and publishes a change
// event after every successful write
package combatsessions

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsessionsmock github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

// Repository defines the storage interface for combat sessions
type Repository interface {
	// Create stores a new session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored session
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the session doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns sessions ordered by UpdatedAt, newest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	Session *combat.Session
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	Session *combat.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *combat.Session
}

// UpdateInput defines the input for updating a session
type UpdateInput struct {
	Session *combat.Session
}

// UpdateOutput defines the output for updating a session
type UpdateOutput struct {
	Session *combat.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}

// ListInput defines the input for listing sessions
type ListInput struct {
	// Status filters by lifecycle state; empty means all
	Status combat.Status
}

// ListOutput defines the output for listing sessions
type ListOutput struct {
	Sessions []*combat.Session
}
