package combat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

func TestSummarize(t *testing.T) {
	session := combat.NewSession("cs_1", "Bridge Fight", "", time.Unix(0, 0).UTC())

	hero := combat.NewHero("h1", "Ayla", 30)
	hero.HP = 15
	session.AddCombatant(hero)

	downed := combat.NewHero("h2", "Brom", 20)
	downed.HP = 0
	session.AddCombatant(downed)

	boss := combat.NewCreature("c1", "Ogre Chief", 60, combat.ThreatBoss)
	session.AddCombatant(boss)

	troop := combat.NewCreature("c2", "Goblin", 8, combat.ThreatTroop)
	troop.HP = 3
	session.AddCombatant(troop)

	session.Start()
	session.NextTurn()

	sum := session.Summarize()

	assert.Equal(t, "cs_1", sum.SessionID)
	assert.Equal(t, combat.StatusActive, sum.Status)
	assert.Equal(t, 1, sum.Round)
	assert.Equal(t, 1, sum.Turn)
	require.NotNil(t, sum.Current)
	assert.Equal(t, "h2", sum.Current.ID)

	assert.Equal(t, combat.SideSummary{Standing: 1, Defeated: 1, HP: 15, MaxHP: 50}, sum.Heroes)
	assert.Equal(t, combat.SideSummary{Standing: 2, Defeated: 0, HP: 63, MaxHP: 68}, sum.Creatures)
	assert.Equal(t, []string{"h1", "c2"}, sum.Winded)
	assert.Equal(t, combat.DefaultHeroPoints, sum.HeroPoints)
}

func TestSummarizeEmptyRoster(t *testing.T) {
	session := combat.NewSession("cs_2", "Quiet Road", "", time.Unix(0, 0).UTC())

	sum := session.Summarize()

	assert.Nil(t, sum.Current)
	assert.Empty(t, sum.Winded)
	assert.Zero(t, sum.Heroes)
	assert.Zero(t, sum.Creatures)
}

func TestCombatantViews(t *testing.T) {
	c := combat.NewCreature("c1", "Wolf", 11, combat.ThreatTroop)

	assert.False(t, c.IsHero())
	assert.False(t, c.IsWinded())

	c.HP = 5
	assert.True(t, c.IsWinded())
	assert.False(t, c.IsDefeated())

	c.HP = 0
	assert.False(t, c.IsWinded())
	assert.True(t, c.IsDefeated())
}

func TestKnownValues(t *testing.T) {
	assert.True(t, combat.StatusPaused.Valid())
	assert.False(t, combat.Status("fleeing").Valid())
	assert.True(t, combat.ThreatCaptain.Valid())
	assert.False(t, combat.ThreatTier("minion").Valid())
}
