package v1alpha1

import (
	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

// SessionRequest addresses one session
type SessionRequest struct {
	ID string `json:"id"`
}

// SessionResponse carries a session snapshot. A nil session means the
// addressed session does not exist and nothing changed.
type SessionResponse struct {
	Session *entity.Session `json:"session,omitempty"`
}

// EmptyRequest is sent by calls without parameters
type EmptyRequest struct{}

// CreateCombatRequest creates a session
type CreateCombatRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DeleteCombatResponse reports whether a session was removed
type DeleteCombatResponse struct {
	Deleted bool `json:"deleted"`
}

// ListCombatsRequest lists sessions, optionally filtered by status
type ListCombatsRequest struct {
	Status entity.Status `json:"status,omitempty"`
}

// ListCombatsResponse holds sessions, most recently updated first
type ListCombatsResponse struct {
	Sessions []*entity.Session `json:"sessions"`
}

// SetActiveCombatResponse reports the active session after a selection
type SetActiveCombatResponse struct {
	ActiveID string          `json:"active_id,omitempty"`
	Session  *entity.Session `json:"session,omitempty"`
}

// SyncResponse reports how many sessions were loaded from storage
type SyncResponse struct {
	Loaded int `json:"loaded"`
}

// GoToTurnRequest jumps to a turn index
type GoToTurnRequest struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// AddHeroRequest adds a hero to the roster
type AddHeroRequest struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	EntityID       string                 `json:"entity_id,omitempty"`
	MaxHP          int                    `json:"max_hp"`
	ArmorClass     *int                   `json:"armor_class,omitempty"`
	HeroicResource *entity.HeroicResource `json:"heroic_resource,omitempty"`
}

// AddCreatureRequest adds a creature to the roster
type AddCreatureRequest struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	EntityID   string            `json:"entity_id,omitempty"`
	MaxHP      int               `json:"max_hp"`
	ArmorClass *int              `json:"armor_class,omitempty"`
	Threat     entity.ThreatTier `json:"threat,omitempty"`
}

// AddCombatantResponse carries the session and the new combatant
type AddCombatantResponse struct {
	Session   *entity.Session   `json:"session"`
	Combatant *entity.Combatant `json:"combatant"`
}

// CombatantRequest addresses one combatant
type CombatantRequest struct {
	ID          string `json:"id"`
	CombatantID string `json:"combatant_id"`
}

// UpdateCombatantRequest edits roster details; omitted fields are unchanged
type UpdateCombatantRequest struct {
	ID             string                 `json:"id"`
	CombatantID    string                 `json:"combatant_id"`
	Name           *string                `json:"name,omitempty"`
	MaxHP          *int                   `json:"max_hp,omitempty"`
	ArmorClass     *int                   `json:"armor_class,omitempty"`
	HeroicResource *entity.HeroicResource `json:"heroic_resource,omitempty"`
	Threat         *entity.ThreatTier     `json:"threat,omitempty"`
}

// RollInitiativeRequest records a rolled initiative pair
type RollInitiativeRequest struct {
	ID          string `json:"id"`
	CombatantID string `json:"combatant_id"`
	Roll1       int    `json:"roll1"`
	Roll2       int    `json:"roll2"`
}

// AmountRequest carries damage, healing or temporary HP
type AmountRequest struct {
	ID          string `json:"id"`
	CombatantID string `json:"combatant_id"`
	Amount      int    `json:"amount"`
}

// ConditionRequest adds, removes or re-times a condition
type ConditionRequest struct {
	ID          string `json:"id"`
	CombatantID string `json:"combatant_id"`
	Name        string `json:"name"`
	Duration    *int   `json:"duration,omitempty"`
}

// PointsRequest sets hero or victory points
type PointsRequest struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

// AddLogEntryRequest appends a free-form entry to the combat log
type AddLogEntryRequest struct {
	ID    string         `json:"id"`
	Entry map[string]any `json:"entry"`
}

// AddLogEntryResponse carries the session and the stamped entry
type AddLogEntryResponse struct {
	Session *entity.Session  `json:"session,omitempty"`
	Entry   *entity.LogEntry `json:"entry,omitempty"`
}

// AddGroupRequest groups combatants
type AddGroupRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CombatantIDs []string `json:"combatant_ids"`
}

// AddGroupResponse carries the session and the new group
type AddGroupResponse struct {
	Session *entity.Session `json:"session"`
	Group   *entity.Group   `json:"group"`
}

// RemoveGroupRequest removes a group
type RemoveGroupRequest struct {
	ID      string `json:"id"`
	GroupID string `json:"group_id"`
}

// SummaryResponse carries the derived session summary
type SummaryResponse struct {
	Summary *entity.Summary `json:"summary"`
}
