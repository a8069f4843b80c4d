package combatsessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*combat.Session
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*combat.Session),
	}
}

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExistsf("session with ID %s already exists", input.Session.ID)
	}

	r.store[input.Session.ID] = input.Session.Clone()

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Session: session.Clone()}, nil
}

// Update replaces a stored session
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.Session.ID)
	}

	r.store[input.Session.ID] = input.Session.Clone()

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("session with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns copies of every stored session, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*combat.Session, 0, len(r.store))
	for _, session := range r.store {
		if matchesStatus(session, input.Status) {
			sessions = append(sessions, session.Clone())
		}
	}

	sortNewestFirst(sessions)

	return &ListOutput{Sessions: sessions}, nil
}
