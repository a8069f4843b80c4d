// Package v1alpha1 handles the combat gRPC service interface
package v1alpha1

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CombatService combat.Service
	// Notifier receives failures and notable outcomes; defaults to notification.Nop
	Notifier notification.Notifier
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.CombatService == nil {
		return errors.InvalidArgument("combat service is required")
	}
	return nil
}

// Handler implements CombatServiceServer
type Handler struct {
	combatService combat.Service
	notifier      notification.Notifier
}

var _ CombatServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notification.Nop
	}

	return &Handler{
		combatService: cfg.CombatService,
		notifier:      notifier,
	}, nil
}

// fail reports err to the notifier and converts it to a gRPC status
func (h *Handler) fail(ctx context.Context, action string, err error) error {
	slog.WarnContext(ctx, "combat request failed",
		"action", action,
		"code", errors.GetCode(err).String(),
		"error", err)

	h.notifier.Notify(ctx, notification.KindError, fmt.Sprintf("Failed to %s: %s", action, errors.GetMessage(err)))

	return errors.ToGRPCError(err)
}

func (h *Handler) session(ctx context.Context, action string, out *combat.SessionOutput, err error) (*SessionResponse, error) {
	if err != nil {
		return nil, h.fail(ctx, action, err)
	}
	return &SessionResponse{Session: out.Session}, nil
}

// CreateCombat creates a session
func (h *Handler) CreateCombat(ctx context.Context, req *CreateCombatRequest) (*SessionResponse, error) {
	out, err := h.combatService.CreateCombat(ctx, &combat.CreateCombatInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, h.fail(ctx, "create combat", err)
	}

	h.notifier.Notify(ctx, notification.KindSuccess, fmt.Sprintf("Combat %q created", out.Session.Name))

	return &SessionResponse{Session: out.Session}, nil
}

// DeleteCombat deletes a session
func (h *Handler) DeleteCombat(ctx context.Context, req *SessionRequest) (*DeleteCombatResponse, error) {
	out, err := h.combatService.DeleteCombat(ctx, &combat.DeleteCombatInput{ID: req.ID})
	if err != nil {
		return nil, h.fail(ctx, "delete combat", err)
	}

	if out.Deleted {
		h.notifier.Notify(ctx, notification.KindSuccess, "Combat deleted")
	}

	return &DeleteCombatResponse{Deleted: out.Deleted}, nil
}

// GetCombat returns one session
func (h *Handler) GetCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.GetCombat(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "load combat", out, err)
}

// ListCombats lists sessions
func (h *Handler) ListCombats(ctx context.Context, req *ListCombatsRequest) (*ListCombatsResponse, error) {
	out, err := h.combatService.ListCombats(ctx, &combat.ListCombatsInput{Status: req.Status})
	if err != nil {
		return nil, h.fail(ctx, "list combats", err)
	}
	return &ListCombatsResponse{Sessions: out.Sessions}, nil
}

// SetActiveCombat selects the active session
func (h *Handler) SetActiveCombat(ctx context.Context, req *SessionRequest) (*SetActiveCombatResponse, error) {
	out, err := h.combatService.SetActiveCombat(ctx, &combat.SetActiveCombatInput{ID: req.ID})
	if err != nil {
		return nil, h.fail(ctx, "select combat", err)
	}
	return &SetActiveCombatResponse{ActiveID: out.ActiveID, Session: out.Session}, nil
}

// GetActiveCombat returns the active session, if any
func (h *Handler) GetActiveCombat(ctx context.Context, _ *EmptyRequest) (*SessionResponse, error) {
	out, err := h.combatService.GetActiveCombat(ctx)
	return h.session(ctx, "load active combat", out, err)
}

// Sync reloads sessions from storage
func (h *Handler) Sync(ctx context.Context, _ *EmptyRequest) (*SyncResponse, error) {
	out, err := h.combatService.Sync(ctx, &combat.SyncInput{})
	if err != nil {
		return nil, h.fail(ctx, "sync combats", err)
	}
	return &SyncResponse{Loaded: out.Loaded}, nil
}

// StartCombat starts a session at round 1
func (h *Handler) StartCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.StartCombat(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "start combat", out, err)
}

// PauseCombat pauses a session
func (h *Handler) PauseCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.PauseCombat(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "pause combat", out, err)
}

// ResumeCombat resumes a session
func (h *Handler) ResumeCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.ResumeCombat(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "resume combat", out, err)
}

// EndCombat completes a session
func (h *Handler) EndCombat(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.EndCombat(ctx, &combat.SessionInput{ID: req.ID})
	if err != nil {
		return nil, h.fail(ctx, "end combat", err)
	}
	if out.Session != nil {
		h.notifier.Notify(ctx, notification.KindInfo, fmt.Sprintf("Combat %q ended", out.Session.Name))
	}
	return &SessionResponse{Session: out.Session}, nil
}

// NextTurn advances the turn
func (h *Handler) NextTurn(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.NextTurn(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "advance turn", out, err)
}

// PreviousTurn steps the turn back
func (h *Handler) PreviousTurn(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.PreviousTurn(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "go back a turn", out, err)
}

// GoToTurn jumps to a turn
func (h *Handler) GoToTurn(ctx context.Context, req *GoToTurnRequest) (*SessionResponse, error) {
	out, err := h.combatService.GoToTurn(ctx, &combat.GoToTurnInput{ID: req.ID, Index: req.Index})
	return h.session(ctx, "change turn", out, err)
}

// RollInitiative records an initiative roll
func (h *Handler) RollInitiative(ctx context.Context, req *RollInitiativeRequest) (*SessionResponse, error) {
	out, err := h.combatService.RollInitiative(ctx, &combat.RollInitiativeInput{
		ID:          req.ID,
		CombatantID: req.CombatantID,
		Roll1:       req.Roll1,
		Roll2:       req.Roll2,
	})
	return h.session(ctx, "record initiative", out, err)
}

// RollInitiativeDice rolls initiative for a combatant
func (h *Handler) RollInitiativeDice(ctx context.Context, req *CombatantRequest) (*SessionResponse, error) {
	out, err := h.combatService.RollInitiativeDice(ctx, &combat.CombatantInput{ID: req.ID, CombatantID: req.CombatantID})
	return h.session(ctx, "roll initiative", out, err)
}

// SortByInitiative orders the roster by initiative
func (h *Handler) SortByInitiative(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.SortByInitiative(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "sort by initiative", out, err)
}

// AddHeroCombatant adds a hero
func (h *Handler) AddHeroCombatant(ctx context.Context, req *AddHeroRequest) (*AddCombatantResponse, error) {
	out, err := h.combatService.AddHeroCombatant(ctx, &combat.AddHeroInput{
		ID:             req.ID,
		Name:           req.Name,
		EntityID:       req.EntityID,
		MaxHP:          req.MaxHP,
		ArmorClass:     req.ArmorClass,
		HeroicResource: req.HeroicResource,
	})
	if err != nil {
		return nil, h.fail(ctx, "add hero", err)
	}
	return &AddCombatantResponse{Session: out.Session, Combatant: out.Combatant}, nil
}

// AddCreatureCombatant adds a creature
func (h *Handler) AddCreatureCombatant(ctx context.Context, req *AddCreatureRequest) (*AddCombatantResponse, error) {
	out, err := h.combatService.AddCreatureCombatant(ctx, &combat.AddCreatureInput{
		ID:         req.ID,
		Name:       req.Name,
		EntityID:   req.EntityID,
		MaxHP:      req.MaxHP,
		ArmorClass: req.ArmorClass,
		Threat:     req.Threat,
	})
	if err != nil {
		return nil, h.fail(ctx, "add creature", err)
	}
	return &AddCombatantResponse{Session: out.Session, Combatant: out.Combatant}, nil
}

// RemoveCombatant removes a combatant
func (h *Handler) RemoveCombatant(ctx context.Context, req *CombatantRequest) (*SessionResponse, error) {
	out, err := h.combatService.RemoveCombatant(ctx, &combat.CombatantInput{ID: req.ID, CombatantID: req.CombatantID})
	return h.session(ctx, "remove combatant", out, err)
}

// UpdateCombatant edits a combatant
func (h *Handler) UpdateCombatant(ctx context.Context, req *UpdateCombatantRequest) (*SessionResponse, error) {
	out, err := h.combatService.UpdateCombatant(ctx, &combat.UpdateCombatantInput{
		ID:             req.ID,
		CombatantID:    req.CombatantID,
		Name:           req.Name,
		MaxHP:          req.MaxHP,
		ArmorClass:     req.ArmorClass,
		HeroicResource: req.HeroicResource,
		Threat:         req.Threat,
	})
	return h.session(ctx, "update combatant", out, err)
}

// AddGroup groups combatants
func (h *Handler) AddGroup(ctx context.Context, req *AddGroupRequest) (*AddGroupResponse, error) {
	out, err := h.combatService.AddGroup(ctx, &combat.AddGroupInput{
		ID:           req.ID,
		Name:         req.Name,
		CombatantIDs: req.CombatantIDs,
	})
	if err != nil {
		return nil, h.fail(ctx, "add group", err)
	}
	return &AddGroupResponse{Session: out.Session, Group: out.Group}, nil
}

// RemoveGroup removes a group
func (h *Handler) RemoveGroup(ctx context.Context, req *RemoveGroupRequest) (*SessionResponse, error) {
	out, err := h.combatService.RemoveGroup(ctx, &combat.RemoveGroupInput{ID: req.ID, GroupID: req.GroupID})
	return h.session(ctx, "remove group", out, err)
}

// ApplyDamage damages a combatant
func (h *Handler) ApplyDamage(ctx context.Context, req *AmountRequest) (*SessionResponse, error) {
	out, err := h.combatService.ApplyDamage(ctx, amountInput(req))
	return h.session(ctx, "apply damage", out, err)
}

// ApplyHealing heals a combatant
func (h *Handler) ApplyHealing(ctx context.Context, req *AmountRequest) (*SessionResponse, error) {
	out, err := h.combatService.ApplyHealing(ctx, amountInput(req))
	return h.session(ctx, "apply healing", out, err)
}

// SetTempHP sets temporary HP
func (h *Handler) SetTempHP(ctx context.Context, req *AmountRequest) (*SessionResponse, error) {
	out, err := h.combatService.SetTempHP(ctx, amountInput(req))
	return h.session(ctx, "set temporary hp", out, err)
}

// AddCondition adds a condition
func (h *Handler) AddCondition(ctx context.Context, req *ConditionRequest) (*SessionResponse, error) {
	out, err := h.combatService.AddCondition(ctx, &combat.AddConditionInput{
		ID:          req.ID,
		CombatantID: req.CombatantID,
		Name:        req.Name,
		Duration:    req.Duration,
	})
	return h.session(ctx, "add condition", out, err)
}

// RemoveCondition removes a condition
func (h *Handler) RemoveCondition(ctx context.Context, req *ConditionRequest) (*SessionResponse, error) {
	out, err := h.combatService.RemoveCondition(ctx, &combat.RemoveConditionInput{
		ID:          req.ID,
		CombatantID: req.CombatantID,
		Name:        req.Name,
	})
	return h.session(ctx, "remove condition", out, err)
}

// UpdateConditionDuration changes a condition's duration
func (h *Handler) UpdateConditionDuration(ctx context.Context, req *ConditionRequest) (*SessionResponse, error) {
	out, err := h.combatService.UpdateConditionDuration(ctx, &combat.UpdateConditionDurationInput{
		ID:          req.ID,
		CombatantID: req.CombatantID,
		Name:        req.Name,
		Duration:    req.Duration,
	})
	return h.session(ctx, "update condition", out, err)
}

// TickConditions counts condition durations down by a round
func (h *Handler) TickConditions(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	out, err := h.combatService.TickConditions(ctx, &combat.SessionInput{ID: req.ID})
	return h.session(ctx, "tick conditions", out, err)
}

// UpdateHeroPoints sets the hero point pool
func (h *Handler) UpdateHeroPoints(ctx context.Context, req *PointsRequest) (*SessionResponse, error) {
	out, err := h.combatService.UpdateHeroPoints(ctx, &combat.PointsInput{ID: req.ID, Amount: req.Amount})
	return h.session(ctx, "update hero points", out, err)
}

// UpdateVictoryPoints sets the victory point tally
func (h *Handler) UpdateVictoryPoints(ctx context.Context, req *PointsRequest) (*SessionResponse, error) {
	out, err := h.combatService.UpdateVictoryPoints(ctx, &combat.PointsInput{ID: req.ID, Amount: req.Amount})
	return h.session(ctx, "update victory points", out, err)
}

// AddLogEntry appends to the combat log
func (h *Handler) AddLogEntry(ctx context.Context, req *AddLogEntryRequest) (*AddLogEntryResponse, error) {
	out, err := h.combatService.AddLogEntry(ctx, &combat.AddLogEntryInput{ID: req.ID, Entry: req.Entry})
	if err != nil {
		return nil, h.fail(ctx, "add log entry", err)
	}
	return &AddLogEntryResponse{Session: out.Session, Entry: out.Entry}, nil
}

// GetSummary returns the derived session summary
func (h *Handler) GetSummary(ctx context.Context, req *SessionRequest) (*SummaryResponse, error) {
	out, err := h.combatService.GetSummary(ctx, &combat.SessionInput{ID: req.ID})
	if err != nil {
		return nil, h.fail(ctx, "load summary", err)
	}
	return &SummaryResponse{Summary: out.Summary}, nil
}

func amountInput(req *AmountRequest) *combat.AmountInput {
	return &combat.AmountInput{
		ID:          req.ID,
		CombatantID: req.CombatantID,
		Amount:      req.Amount,
	}
}
