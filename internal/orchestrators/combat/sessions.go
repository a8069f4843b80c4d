package combat

import (
	"context"
	"log/slog"
	"maps"
	"sort"

	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
)

func (o *orchestrator) CreateCombat(ctx context.Context, input *CreateCombatInput) (*CreateCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session := entity.NewSession(o.idGen.Generate(), input.Name, input.Description, o.clock.Now())

	if _, err := o.repo.Create(ctx, combatsessions.CreateInput{Session: session}); err != nil {
		return nil, errors.Wrap(err, "failed to create combat session")
	}

	o.store(session)

	slog.InfoContext(ctx, "combat session created",
		"session_id", session.ID,
		"name", session.Name)

	return &CreateCombatOutput{Session: session.Clone()}, nil
}

func (o *orchestrator) DeleteCombat(ctx context.Context, input *DeleteCombatInput) (*DeleteCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	_, known := o.lookup(input.ID)

	_, err := o.repo.Delete(ctx, combatsessions.DeleteInput{ID: input.ID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to delete combat session %s", input.ID)
	}

	o.mu.Lock()
	delete(o.sessions, input.ID)
	if o.activeID == input.ID {
		o.activeID = ""
	}
	o.mu.Unlock()

	deleted := err == nil || known
	if deleted {
		slog.InfoContext(ctx, "combat session deleted", "session_id", input.ID)
	}

	return &DeleteCombatOutput{Deleted: deleted}, nil
}

func (o *orchestrator) GetCombat(_ context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}

	session, ok := o.lookup(input.ID)
	if !ok {
		return nil, errors.NotFoundf("combat session %s not found", input.ID).WithMeta("session_id", input.ID)
	}

	return &SessionOutput{Session: session.Clone()}, nil
}

func (o *orchestrator) ListCombats(_ context.Context, input *ListCombatsInput) (*ListCombatsOutput, error) {
	if input == nil {
		input = &ListCombatsInput{}
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, errors.InvalidArgumentf("unknown status %q", input.Status)
	}

	o.mu.RLock()
	sessions := make([]*entity.Session, 0, len(o.sessions))
	for _, session := range o.sessions {
		if input.Status == "" || session.Status == input.Status {
			sessions = append(sessions, session.Clone())
		}
	}
	o.mu.RUnlock()

	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID < b.ID
	})

	return &ListCombatsOutput{Sessions: sessions}, nil
}

func (o *orchestrator) SetActiveCombat(ctx context.Context, input *SetActiveCombatInput) (*SetActiveCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if input.ID == "" {
		o.activeID = ""
		return &SetActiveCombatOutput{}, nil
	}

	session, ok := o.sessions[input.ID]
	if !ok {
		slog.DebugContext(ctx, "combat session not found, active session unchanged", "session_id", input.ID)
		return &SetActiveCombatOutput{ActiveID: o.activeID}, nil
	}

	o.activeID = input.ID

	return &SetActiveCombatOutput{ActiveID: o.activeID, Session: session.Clone()}, nil
}

func (o *orchestrator) GetActiveCombat(_ context.Context) (*SessionOutput, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.activeID == "" {
		return &SessionOutput{}, nil
	}

	return &SessionOutput{Session: o.sessions[o.activeID].Clone()}, nil
}

func (o *orchestrator) Sync(ctx context.Context, _ *SyncInput) (*SyncOutput, error) {
	list, err := o.repo.List(ctx, combatsessions.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load combat sessions")
	}

	sessions := make(map[string]*entity.Session, len(list.Sessions))
	for _, session := range list.Sessions {
		sessions[session.ID] = session.Clone()
	}

	o.mu.Lock()
	o.sessions = sessions
	if _, ok := sessions[o.activeID]; !ok {
		o.activeID = ""
	}
	o.mu.Unlock()

	slog.InfoContext(ctx, "combat sessions synced", "count", len(sessions))

	return &SyncOutput{Loaded: len(sessions)}, nil
}

func (o *orchestrator) StartCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).Start))
}

func (o *orchestrator) PauseCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).Pause))
}

func (o *orchestrator) ResumeCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).Resume))
}

func (o *orchestrator) EndCombat(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).End))
}

func (o *orchestrator) NextTurn(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).NextTurn))
}

func (o *orchestrator) PreviousTurn(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).PreviousTurn))
}

func (o *orchestrator) GoToTurn(ctx context.Context, input *GoToTurnInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	return sessionOutput(o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		return s.GoToTurn(input.Index)
	}))
}

func (o *orchestrator) SortByInitiative(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).SortByInitiative))
}

func (o *orchestrator) TickConditions(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, (*entity.Session).TickConditions))
}

func (o *orchestrator) UpdateHeroPoints(ctx context.Context, input *PointsInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	return sessionOutput(o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		return s.SetHeroPoints(input.Amount)
	}))
}

func (o *orchestrator) UpdateVictoryPoints(ctx context.Context, input *PointsInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	return sessionOutput(o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		return s.SetVictoryPoints(input.Amount)
	}))
}

func (o *orchestrator) AddLogEntry(ctx context.Context, input *AddLogEntryInput) (*AddLogEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if len(input.Entry) == 0 {
		vb.RequiredField("entry")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, err := o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		s.AppendLog(entity.LogEntry{
			ID:        o.idGen.Generate(),
			Timestamp: o.clock.Now(),
			Entry:     maps.Clone(input.Entry),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return &AddLogEntryOutput{}, nil
	}

	entry := session.Log[len(session.Log)-1]
	return &AddLogEntryOutput{Session: session, Entry: &entry}, nil
}

func (o *orchestrator) GetSummary(_ context.Context, input *SessionInput) (*GetSummaryOutput, error) {
	if err := requireSessionID(input); err != nil {
		return nil, err
	}

	session, ok := o.lookup(input.ID)
	if !ok {
		return nil, errors.NotFoundf("combat session %s not found", input.ID).WithMeta("session_id", input.ID)
	}

	return &GetSummaryOutput{Summary: session.Summarize()}, nil
}
