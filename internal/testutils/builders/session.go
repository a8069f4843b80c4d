// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

// SessionBuilder provides a fluent interface for building test sessions
type SessionBuilder struct {
	session *combat.Session
}

// NewSessionBuilder creates a preparing session with fixed timestamps
func NewSessionBuilder() *SessionBuilder {
	created := time.Date(2026, 1, 2, 18, 30, 0, 0, time.UTC)
	return &SessionBuilder{
		session: combat.NewSession("cs-test-001", "Test Encounter", "", created),
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithName sets the session name
func (b *SessionBuilder) WithName(name string) *SessionBuilder {
	b.session.Name = name
	return b
}

// WithStatus sets the status without touching round or turn
func (b *SessionBuilder) WithStatus(status combat.Status) *SessionBuilder {
	b.session.Status = status
	return b
}

// Started moves the session to active, round 1, turn 0
func (b *SessionBuilder) Started() *SessionBuilder {
	b.session.Start()
	return b
}

// AtTurn places the session at the given round and turn
func (b *SessionBuilder) AtTurn(round, turn int) *SessionBuilder {
	b.session.CurrentRound = round
	b.session.CurrentTurn = turn
	return b
}

// WithHero appends a hero at full health
func (b *SessionBuilder) WithHero(id, name string, maxHP int) *SessionBuilder {
	b.session.AddCombatant(combat.NewHero(id, name, maxHP))
	return b
}

// WithCreature appends a creature at full health
func (b *SessionBuilder) WithCreature(id, name string, maxHP int, threat combat.ThreatTier) *SessionBuilder {
	b.session.AddCombatant(combat.NewCreature(id, name, maxHP, threat))
	return b
}

// WithCombatant appends c as-is
func (b *SessionBuilder) WithCombatant(c combat.Combatant) *SessionBuilder {
	b.session.AddCombatant(c)
	return b
}

// UpdatedAt sets the update timestamp
func (b *SessionBuilder) UpdatedAt(t time.Time) *SessionBuilder {
	b.session.UpdatedAt = t
	return b
}

// Build returns a copy of the built session
func (b *SessionBuilder) Build() *combat.Session {
	return b.session.Clone()
}
