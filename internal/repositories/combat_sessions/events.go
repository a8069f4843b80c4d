package combatsessions

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

// Change event types published after a successful write
const (
	EventSessionCreated = "combat_session.created"
	EventSessionUpdated = "combat_session.updated"
	EventSessionDeleted = "combat_session.deleted"
)

// EventTypes lists every change event type
var EventTypes = []string{EventSessionCreated, EventSessionUpdated, EventSessionDeleted}

type publishingRepository struct {
	Repository
	bus events.EventBus
}

// WithEvents wraps next so every successful Create, Update and Delete
// publishes a change event on bus. The event source is a snapshot of the
// written session; for deletes only its ID is set.
func WithEvents(next Repository, bus events.EventBus) Repository {
	if bus == nil {
		return next
	}
	return &publishingRepository{Repository: next, bus: bus}
}

func (r *publishingRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	out, err := r.Repository.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	r.publish(ctx, EventSessionCreated, out.Session.Clone())
	return out, nil
}

func (r *publishingRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	out, err := r.Repository.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	r.publish(ctx, EventSessionUpdated, out.Session.Clone())
	return out, nil
}

func (r *publishingRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	out, err := r.Repository.Delete(ctx, input)
	if err != nil {
		return nil, err
	}
	r.publish(ctx, EventSessionDeleted, &combat.Session{ID: input.ID})
	return out, nil
}

// publish never fails the write; the change is already stored
func (r *publishingRepository) publish(ctx context.Context, eventType string, session *combat.Session) {
	event := events.NewGameEvent(eventType, session, nil)
	if err := r.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish session change",
			"event", eventType,
			"session_id", session.ID,
			"error", err)
	}
}

// SessionFromEvent extracts the session snapshot carried by a change event
func SessionFromEvent(event events.Event) (*combat.Session, bool) {
	if event == nil {
		return nil, false
	}
	session, ok := event.Source().(*combat.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
