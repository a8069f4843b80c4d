package combat

import (
	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

// SessionInput addresses a single session
type SessionInput struct {
	ID string
}

// SessionOutput carries a session snapshot. Mutators return a nil Session
// when the addressed session does not exist.
type SessionOutput struct {
	Session *entity.Session
}

// CreateCombatInput defines the request for creating a session
type CreateCombatInput struct {
	Name        string
	Description string
}

// CreateCombatOutput defines the response for creating a session
type CreateCombatOutput struct {
	Session *entity.Session
}

// DeleteCombatInput defines the request for deleting a session
type DeleteCombatInput struct {
	ID string
}

// DeleteCombatOutput defines the response for deleting a session
type DeleteCombatOutput struct {
	// Deleted is false when the session did not exist
	Deleted bool
}

// ListCombatsInput defines the request for listing sessions
type ListCombatsInput struct {
	// Status filters by lifecycle state; empty means all
	Status entity.Status
}

// ListCombatsOutput defines the response for listing sessions
type ListCombatsOutput struct {
	Sessions []*entity.Session
}

// SetActiveCombatInput selects the active session; an empty ID clears it
type SetActiveCombatInput struct {
	ID string
}

// SetActiveCombatOutput defines the response for selecting the active session
type SetActiveCombatOutput struct {
	ActiveID string
	Session  *entity.Session
}

// SyncInput defines the request for reloading sessions from storage
type SyncInput struct{}

// SyncOutput defines the response for reloading sessions from storage
type SyncOutput struct {
	Loaded int
}

// GoToTurnInput defines the request for jumping to a turn
type GoToTurnInput struct {
	ID    string
	Index int
}

// AddHeroInput defines the request for adding a hero
type AddHeroInput struct {
	ID             string
	Name           string
	EntityID       string
	MaxHP          int
	ArmorClass     *int
	HeroicResource *entity.HeroicResource
}

// AddCreatureInput defines the request for adding a creature
type AddCreatureInput struct {
	ID         string
	Name       string
	EntityID   string
	MaxHP      int
	ArmorClass *int
	// Threat defaults to troop
	Threat entity.ThreatTier
}

// AddCombatantOutput defines the response for adding a combatant
type AddCombatantOutput struct {
	Session   *entity.Session
	Combatant *entity.Combatant
}

// CombatantInput addresses one combatant of a session
type CombatantInput struct {
	ID          string
	CombatantID string
}

// UpdateCombatantInput edits roster details. Nil fields are left alone.
type UpdateCombatantInput struct {
	ID             string
	CombatantID    string
	Name           *string
	MaxHP          *int
	ArmorClass     *int
	HeroicResource *entity.HeroicResource
	Threat         *entity.ThreatTier
}

// RollInitiativeInput records a two-die initiative roll
type RollInitiativeInput struct {
	ID          string
	CombatantID string
	Roll1       int
	Roll2       int
}

// AmountInput carries a damage, healing or temporary HP amount
type AmountInput struct {
	ID          string
	CombatantID string
	Amount      int
}

// AddConditionInput defines the request for adding a condition
type AddConditionInput struct {
	ID          string
	CombatantID string
	Name        string
	// Duration in rounds; nil lasts until removed
	Duration *int
}

// RemoveConditionInput defines the request for removing a condition
type RemoveConditionInput struct {
	ID          string
	CombatantID string
	Name        string
}

// UpdateConditionDurationInput defines the request for changing a condition's duration
type UpdateConditionDurationInput struct {
	ID          string
	CombatantID string
	Name        string
	Duration    *int
}

// PointsInput sets a party resource pool
type PointsInput struct {
	ID     string
	Amount int
}

// AddLogEntryInput defines the request for appending to the combat log
type AddLogEntryInput struct {
	ID    string
	Entry map[string]any
}

// AddLogEntryOutput defines the response for appending to the combat log
type AddLogEntryOutput struct {
	Session *entity.Session
	Entry   *entity.LogEntry
}

// AddGroupInput defines the request for grouping combatants
type AddGroupInput struct {
	ID           string
	Name         string
	CombatantIDs []string
}

// AddGroupOutput defines the response for grouping combatants
type AddGroupOutput struct {
	Session *entity.Session
	Group   *entity.Group
}

// RemoveGroupInput defines the request for removing a group
type RemoveGroupInput struct {
	ID      string
	GroupID string
}

// GetSummaryOutput defines the response for a session summary
type GetSummaryOutput struct {
	Summary *entity.Summary
}
