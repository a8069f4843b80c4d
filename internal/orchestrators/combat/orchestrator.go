// Package combat implements the combat session manager: it owns the set of
// combat sessions, applies turn, roster and HP transitions to snapshots and
// persists every change through the session repository.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/idgen"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
)

// DefaultInitiativeDie is the die size rolled twice for initiative
const DefaultInitiativeDie = 10

// Service defines the combat session manager
type Service interface {
	// Session collection
	CreateCombat(ctx context.Context, input *CreateCombatInput) (*CreateCombatOutput, error)
	DeleteCombat(ctx context.Context, input *DeleteCombatInput) (*DeleteCombatOutput, error)
	GetCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	ListCombats(ctx context.Context, input *ListCombatsInput) (*ListCombatsOutput, error)
	SetActiveCombat(ctx context.Context, input *SetActiveCombatInput) (*SetActiveCombatOutput, error)
	GetActiveCombat(ctx context.Context) (*SessionOutput, error)
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)

	// Lifecycle
	StartCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	PauseCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	ResumeCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	EndCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// Turn order
	NextTurn(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	PreviousTurn(ctx context.Context, input *SessionInput) (*SessionOutput, error)
	GoToTurn(ctx context.Context, input *GoToTurnInput) (*SessionOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*SessionOutput, error)
	RollInitiativeDice(ctx context.Context, input *CombatantInput) (*SessionOutput, error)
	SortByInitiative(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// Roster
	AddHeroCombatant(ctx context.Context, input *AddHeroInput) (*AddCombatantOutput, error)
	AddCreatureCombatant(ctx context.Context, input *AddCreatureInput) (*AddCombatantOutput, error)
	RemoveCombatant(ctx context.Context, input *CombatantInput) (*SessionOutput, error)
	UpdateCombatant(ctx context.Context, input *UpdateCombatantInput) (*SessionOutput, error)
	AddGroup(ctx context.Context, input *AddGroupInput) (*AddGroupOutput, error)
	RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*SessionOutput, error)

	// Health and conditions
	ApplyDamage(ctx context.Context, input *AmountInput) (*SessionOutput, error)
	ApplyHealing(ctx context.Context, input *AmountInput) (*SessionOutput, error)
	SetTempHP(ctx context.Context, input *AmountInput) (*SessionOutput, error)
	AddCondition(ctx context.Context, input *AddConditionInput) (*SessionOutput, error)
	RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*SessionOutput, error)
	UpdateConditionDuration(ctx context.Context, input *UpdateConditionDurationInput) (*SessionOutput, error)
	TickConditions(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// Party resources and log
	UpdateHeroPoints(ctx context.Context, input *PointsInput) (*SessionOutput, error)
	UpdateVictoryPoints(ctx context.Context, input *PointsInput) (*SessionOutput, error)
	AddLogEntry(ctx context.Context, input *AddLogEntryInput) (*AddLogEntryOutput, error)

	GetSummary(ctx context.Context, input *SessionInput) (*GetSummaryOutput, error)

	// Close stops listening for repository change events
	Close() error
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Repository  combatsessions.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// DiceRoller defaults to the rpg-toolkit crypto roller
	DiceRoller dice.Roller
	// InitiativeDie defaults to DefaultInitiativeDie
	InitiativeDie int
	// EventBus is optional. When set, the orchestrator follows session
	// changes published by the repository.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.InitiativeDie < 0 || c.InitiativeDie == 1 {
		vb.Field("InitiativeDie", "must be at least 2")
	}

	return vb.Build()
}

type orchestrator struct {
	repo          combatsessions.Repository
	clock         clock.Clock
	idGen         idgen.Generator
	roller        dice.Roller
	initiativeDie int

	bus           events.EventBus
	subscriptions []string

	mu       sync.RWMutex
	sessions map[string]*entity.Session
	activeID string
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
		roller:        cfg.DiceRoller,
		initiativeDie: cfg.InitiativeDie,
		bus:           cfg.EventBus,
		sessions:      make(map[string]*entity.Session),
	}

	if o.roller == nil {
		o.roller = dice.DefaultRoller
	}
	if o.initiativeDie == 0 {
		o.initiativeDie = DefaultInitiativeDie
	}

	if o.bus != nil {
		for _, eventType := range combatsessions.EventTypes {
			id := o.bus.SubscribeFunc(eventType, 0, o.handleSessionEvent)
			o.subscriptions = append(o.subscriptions, id)
		}
	}

	return o, nil
}

func (o *orchestrator) Close() error {
	if o.bus == nil {
		return nil
	}

	var firstErr error
	for _, id := range o.subscriptions {
		if err := o.bus.Unsubscribe(id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	o.subscriptions = nil

	return firstErr
}

// handleSessionEvent keeps the collection in step with writes made through
// the repository, including writes from other orchestrators sharing the bus
func (o *orchestrator) handleSessionEvent(_ context.Context, event events.Event) error {
	session, ok := combatsessions.SessionFromEvent(event)
	if !ok {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.Type() {
	case combatsessions.EventSessionDeleted:
		delete(o.sessions, session.ID)
		if o.activeID == session.ID {
			o.activeID = ""
		}
	case combatsessions.EventSessionCreated, combatsessions.EventSessionUpdated:
		current, exists := o.sessions[session.ID]
		if exists && current.UpdatedAt.After(session.UpdatedAt) {
			return nil
		}
		o.sessions[session.ID] = session.Clone()
	}

	return nil
}

func (o *orchestrator) lookup(id string) (*entity.Session, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	session, ok := o.sessions[id]
	return session, ok
}

func (o *orchestrator) store(session *entity.Session) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.sessions[session.ID] = session
}

// replace swaps in a mutated snapshot. A session deleted while the write was
// in flight stays deleted.
func (o *orchestrator) replace(session *entity.Session) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.sessions[session.ID]; !ok {
		return false
	}
	o.sessions[session.ID] = session
	return true
}

// mutate clones the stored session, applies fn and, when fn reports the
// transition applied, stamps, persists and swaps the snapshot into the
// collection. A missing session returns nil without error, as does one
// deleted while the write was in flight. The lock is never held across the
// repository call.
func (o *orchestrator) mutate(ctx context.Context, id string, fn func(s *entity.Session) bool) (*entity.Session, error) {
	current, ok := o.lookup(id)
	if !ok {
		slog.DebugContext(ctx, "combat session not found, ignoring", "session_id", id)
		return nil, nil
	}

	next := current.Clone()
	if !fn(next) {
		return next, nil
	}

	next.Touch(o.clock.Now())

	if _, err := o.repo.Update(ctx, combatsessions.UpdateInput{Session: next}); err != nil {
		return nil, errors.Wrapf(err, "failed to update combat session %s", id)
	}

	if !o.replace(next) {
		slog.DebugContext(ctx, "combat session deleted during update, discarding", "session_id", id)
		return nil, nil
	}

	return next.Clone(), nil
}

// mutateExisting is mutate for creation-style operations, which fail loudly
// when the session is missing
func (o *orchestrator) mutateExisting(ctx context.Context, id string, fn func(s *entity.Session) bool) (*entity.Session, error) {
	if _, ok := o.lookup(id); !ok {
		return nil, errors.NotFoundf("combat session %s not found", id).WithMeta("session_id", id)
	}
	session, err := o.mutate(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	if session == nil {
		// deleted between the check and the mutation
		return nil, errors.NotFoundf("combat session %s not found", id).WithMeta("session_id", id)
	}
	return session, nil
}

// mutateCombatant is mutate narrowed to one combatant. A missing combatant
// leaves the session unchanged.
func (o *orchestrator) mutateCombatant(ctx context.Context, id, combatantID string, fn func(c *entity.Combatant) bool) (*entity.Session, error) {
	return o.mutate(ctx, id, func(s *entity.Session) bool {
		c := s.Combatant(combatantID)
		if c == nil {
			slog.DebugContext(ctx, "combatant not found, ignoring",
				"session_id", id,
				"combatant_id", combatantID)
			return false
		}
		return fn(c)
	})
}

func sessionOutput(session *entity.Session, err error) (*SessionOutput, error) {
	if err != nil {
		return nil, err
	}
	return &SessionOutput{Session: session}, nil
}

func requireSessionID(input *SessionInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	return vb.Build()
}

func requireCombatant(id, combatantID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	errors.ValidateRequired("combatant_id", combatantID, vb)
	return vb.Build()
}
