package testutils

import (
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/testutils/builders"
)

// Fixture names used across handler and orchestrator tests
const (
	TestHeroName     = "Ayla Stormborn"
	TestCreatureName = "Goblin Sniper"
)

// CreateTestSession returns a started session with two heroes and two creatures
func CreateTestSession(id string) *combat.Session {
	return builders.NewSessionBuilder().
		WithID(id).
		WithName("Ambush at the Ford").
		WithHero("hero-1", TestHeroName, 30).
		WithHero("hero-2", "Brom Ironhand", 24).
		WithCreature("creature-1", TestCreatureName, 9, combat.ThreatTroop).
		WithCreature("creature-2", "Goblin Boss", 40, combat.ThreatBoss).
		Started().
		Build()
}

// SQLitePath returns a database path inside a per-test temp directory
func SQLitePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "combat.db")
}
