// Package combat defines the combat session domain model: sessions, their
// roster of combatants, conditions, log and groups, together with the state
// transitions the manager applies to session snapshots.
package combat

import (
	"maps"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by a Session
const EntityType = "combat_session"

// DefaultHeroPoints is the party hero point pool a new session starts with
const DefaultHeroPoints = 3

// Status is the lifecycle state of a combat session
type Status string

// Session statuses
const (
	StatusPreparing Status = "preparing"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status
var Statuses = []Status{StatusPreparing, StatusActive, StatusPaused, StatusCompleted}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Kind distinguishes heroes from creatures
type Kind string

// Combatant kinds
const (
	KindHero     Kind = "hero"
	KindCreature Kind = "creature"
)

// ThreatTier ranks a creature
type ThreatTier string

// Threat tiers
const (
	ThreatBoss    ThreatTier = "boss"
	ThreatCaptain ThreatTier = "captain"
	ThreatTroop   ThreatTier = "troop"
)

// ThreatTiers lists every valid tier
var ThreatTiers = []ThreatTier{ThreatBoss, ThreatCaptain, ThreatTroop}

// Valid reports whether t is a known tier
func (t ThreatTier) Valid() bool {
	for _, known := range ThreatTiers {
		if t == known {
			return true
		}
	}
	return false
}

// Session is a single combat encounter
type Session struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Status        Status      `json:"status"`
	CurrentRound  int         `json:"current_round"`
	CurrentTurn   int         `json:"current_turn"`
	VictoryPoints int         `json:"victory_points"`
	HeroPoints    int         `json:"hero_points"`
	Combatants    []Combatant `json:"combatants"`
	Log           []LogEntry  `json:"log"`
	Groups        []Group     `json:"groups,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// HeroicResource is a hero's class resource pool (e.g. "Focus", "Wrath")
type HeroicResource struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Combatant is a hero or creature in a session's roster
type Combatant struct {
	ID             string          `json:"id"`
	Kind           Kind            `json:"kind"`
	Name           string          `json:"name"`
	EntityID       string          `json:"entity_id,omitempty"`
	Initiative     int             `json:"initiative"`
	InitiativeRoll [2]int          `json:"initiative_roll"`
	HP             int             `json:"hp"`
	MaxHP          int             `json:"max_hp"`
	TempHP         int             `json:"temp_hp"`
	ArmorClass     *int            `json:"armor_class,omitempty"`
	Conditions     []Condition     `json:"conditions"`
	HeroicResource *HeroicResource `json:"heroic_resource,omitempty"`
	Threat         ThreatTier      `json:"threat,omitempty"`
}

// Condition is a named status effect. A nil Duration lasts until removed.
type Condition struct {
	Name     string `json:"name"`
	Duration *int   `json:"duration,omitempty"`
}

// LogEntry is an append-only record of something that happened in combat
type LogEntry struct {
	ID        string         `json:"id"`
	Round     int            `json:"round"`
	Turn      int            `json:"turn"`
	Timestamp time.Time      `json:"timestamp"`
	Entry     map[string]any `json:"entry"`
}

// Group is a named set of combatants acting together
type Group struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CombatantIDs []string `json:"combatant_ids"`
}

// NewSession returns a session in the preparing state
func NewSession(id, name, description string, now time.Time) *Session {
	return &Session{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      StatusPreparing,
		HeroPoints:  DefaultHeroPoints,
		Combatants:  []Combatant{},
		Log:         []LogEntry{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewHero returns a hero at full health
func NewHero(id, name string, maxHP int) Combatant {
	return Combatant{
		ID:         id,
		Kind:       KindHero,
		Name:       name,
		HP:         maxHP,
		MaxHP:      maxHP,
		Conditions: []Condition{},
	}
}

// NewCreature returns a creature at full health
func NewCreature(id, name string, maxHP int, threat ThreatTier) Combatant {
	return Combatant{
		ID:         id,
		Kind:       KindCreature,
		Name:       name,
		HP:         maxHP,
		MaxHP:      maxHP,
		Conditions: []Condition{},
		Threat:     threat,
	}
}

var (
	_ core.Entity = (*Session)(nil)
	_ core.Entity = (*Combatant)(nil)
)

// GetID returns the session id
func (s *Session) GetID() string {
	return s.ID
}

// GetType returns the session entity type
func (s *Session) GetType() string {
	return EntityType
}

// GetID returns the combatant id
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType reports the combatant kind
func (c *Combatant) GetType() string {
	return string(c.Kind)
}

// Touch stamps the update time
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}

// Clone returns a deep copy that shares no slices or pointers with s
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	out := *s

	out.Combatants = make([]Combatant, len(s.Combatants))
	for i := range s.Combatants {
		out.Combatants[i] = s.Combatants[i].clone()
	}

	out.Log = make([]LogEntry, len(s.Log))
	for i, entry := range s.Log {
		entry.Entry = maps.Clone(entry.Entry)
		out.Log[i] = entry
	}

	if s.Groups != nil {
		out.Groups = make([]Group, len(s.Groups))
		for i, g := range s.Groups {
			g.CombatantIDs = append([]string(nil), g.CombatantIDs...)
			out.Groups[i] = g
		}
	}

	return &out
}

func (c Combatant) clone() Combatant {
	out := c

	if c.ArmorClass != nil {
		ac := *c.ArmorClass
		out.ArmorClass = &ac
	}

	if c.HeroicResource != nil {
		res := *c.HeroicResource
		out.HeroicResource = &res
	}

	out.Conditions = make([]Condition, len(c.Conditions))
	for i, cond := range c.Conditions {
		if cond.Duration != nil {
			d := *cond.Duration
			cond.Duration = &d
		}
		out.Conditions[i] = cond
	}

	return out
}
