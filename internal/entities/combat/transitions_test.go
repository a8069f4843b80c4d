package combat_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
)

type TransitionsTestSuite struct {
	suite.Suite

	now     time.Time
	session *combat.Session
}

func TestTransitionsSuite(t *testing.T) {
	suite.Run(t, new(TransitionsTestSuite))
}

func (s *TransitionsTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	s.session = combat.NewSession("cs_1", "Goblin Ambush", "", s.now)
}

func (s *TransitionsTestSuite) withRoster(ids ...string) {
	for _, id := range ids {
		s.session.AddCombatant(combat.NewHero(id, "Hero "+id, 20))
	}
}

func intPtr(v int) *int {
	return &v
}

func (s *TransitionsTestSuite) TestNewSessionDefaults() {
	s.Equal(combat.StatusPreparing, s.session.Status)
	s.Equal(0, s.session.CurrentRound)
	s.Equal(0, s.session.CurrentTurn)
	s.Equal(combat.DefaultHeroPoints, s.session.HeroPoints)
	s.Equal(0, s.session.VictoryPoints)
	s.Empty(s.session.Combatants)
	s.Empty(s.session.Log)
	s.Equal(s.now, s.session.CreatedAt)
	s.Equal(s.now, s.session.UpdatedAt)
	s.Equal("cs_1", s.session.GetID())
	s.Equal(combat.EntityType, s.session.GetType())

	hero := combat.NewHero("c_1", "Aria", 30)
	s.Equal("c_1", hero.GetID())
	s.Equal(string(combat.KindHero), hero.GetType())
}

func (s *TransitionsTestSuite) TestLifecycle() {
	s.session.CurrentRound = 4
	s.session.CurrentTurn = 2

	s.True(s.session.Start())
	s.Equal(combat.StatusActive, s.session.Status)
	s.Equal(1, s.session.CurrentRound)
	s.Equal(0, s.session.CurrentTurn)

	s.True(s.session.Pause())
	s.Equal(combat.StatusPaused, s.session.Status)

	s.Run("pausing twice keeps the session paused", func() {
		s.True(s.session.Pause())
		s.Equal(combat.StatusPaused, s.session.Status)
	})

	s.True(s.session.Resume())
	s.Equal(combat.StatusActive, s.session.Status)
	s.Equal(1, s.session.CurrentRound)

	s.True(s.session.End())
	s.Equal(combat.StatusCompleted, s.session.Status)
}

func (s *TransitionsTestSuite) TestNextTurn() {
	s.Run("empty roster is a no-op", func() {
		s.False(s.session.NextTurn())
		s.Equal(0, s.session.CurrentTurn)
		s.Equal(0, s.session.CurrentRound)
	})

	s.withRoster("a", "b", "c")
	s.session.Start()

	s.True(s.session.NextTurn())
	s.Equal(1, s.session.CurrentTurn)
	s.Equal(1, s.session.CurrentRound)

	s.Run("wraps to the next round after the last combatant", func() {
		s.session.CurrentTurn = 2
		s.True(s.session.NextTurn())
		s.Equal(0, s.session.CurrentTurn)
		s.Equal(2, s.session.CurrentRound)
	})
}

func (s *TransitionsTestSuite) TestPreviousTurn() {
	s.False(s.session.PreviousTurn())
	s.Equal(0, s.session.CurrentTurn)

	s.withRoster("a", "b", "c")
	s.session.Start()

	s.Run("round 1 never goes below 1", func() {
		s.True(s.session.PreviousTurn())
		s.Equal(2, s.session.CurrentTurn)
		s.Equal(1, s.session.CurrentRound)
	})

	s.Run("wrapping decrements later rounds", func() {
		s.session.CurrentRound = 3
		s.session.CurrentTurn = 0
		s.True(s.session.PreviousTurn())
		s.Equal(2, s.session.CurrentTurn)
		s.Equal(2, s.session.CurrentRound)
	})

	s.Run("steps back within a round", func() {
		s.True(s.session.PreviousTurn())
		s.Equal(1, s.session.CurrentTurn)
		s.Equal(2, s.session.CurrentRound)
	})
}

func (s *TransitionsTestSuite) TestGoToTurn() {
	s.withRoster("a", "b", "c")

	s.True(s.session.GoToTurn(2))
	s.Equal(2, s.session.CurrentTurn)

	s.True(s.session.GoToTurn(2))
	s.False(s.session.GoToTurn(3))
	s.False(s.session.GoToTurn(-1))
	s.Equal(2, s.session.CurrentTurn)
}

func (s *TransitionsTestSuite) TestRemoveCombatant() {
	s.withRoster("a", "b", "c")
	s.session.AddGroup("g1", "Flankers", []string{"b", "c"})

	s.Run("removing the last-indexed current combatant clamps the turn", func() {
		s.session.CurrentTurn = 2
		s.True(s.session.RemoveCombatant("c"))
		s.Len(s.session.Combatants, 2)
		s.Equal(1, s.session.CurrentTurn)
		s.Equal([]string{"b"}, s.session.Groups[0].CombatantIDs)
	})

	s.Run("unknown combatant is a no-op", func() {
		s.False(s.session.RemoveCombatant("zzz"))
		s.Len(s.session.Combatants, 2)
	})

	s.Run("emptying the roster resets the turn", func() {
		s.True(s.session.RemoveCombatant("a"))
		s.True(s.session.RemoveCombatant("b"))
		s.Empty(s.session.Combatants)
		s.Equal(0, s.session.CurrentTurn)
		s.Empty(s.session.Groups[0].CombatantIDs)
	})
}

func (s *TransitionsTestSuite) TestSortByInitiativeIsStable() {
	s.withRoster("a", "b", "c", "d")
	s.session.Combatants[0].SetInitiative(3, 4)
	s.session.Combatants[1].SetInitiative(9, 9)
	s.session.Combatants[2].SetInitiative(5, 2)
	s.session.Combatants[3].SetInitiative(1, 1)

	s.True(s.session.SortByInitiative())

	ids := make([]string, 0, 4)
	for _, c := range s.session.Combatants {
		ids = append(ids, c.ID)
	}
	s.Equal([]string{"b", "a", "c", "d"}, ids)
}

func (s *TransitionsTestSuite) TestSetInitiative() {
	c := combat.NewCreature("orc", "Orc", 12, combat.ThreatTroop)

	s.True(c.SetInitiative(4, 6))
	s.Equal([2]int{4, 6}, c.InitiativeRoll)
	s.Equal(10, c.Initiative)
}

func (s *TransitionsTestSuite) TestApplyDamage() {
	testCases := []struct {
		name       string
		hp         int
		tempHP     int
		amount     int
		wantHP     int
		wantTempHP int
	}{
		{name: "temp hp absorbs first", hp: 10, tempHP: 5, amount: 8, wantHP: 7, wantTempHP: 0},
		{name: "temp hp absorbs everything", hp: 10, tempHP: 5, amount: 3, wantHP: 10, wantTempHP: 2},
		{name: "hp floors at zero", hp: 4, tempHP: 0, amount: 50, wantHP: 0, wantTempHP: 0},
		{name: "negative amount deals nothing", hp: 10, tempHP: 2, amount: -5, wantHP: 10, wantTempHP: 2},
		{name: "zero amount deals nothing", hp: 10, tempHP: 0, amount: 0, wantHP: 10, wantTempHP: 0},
		{name: "huge amount floors at zero", hp: 10, tempHP: 3, amount: math.MaxInt, wantHP: 0, wantTempHP: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := combat.NewHero("h", "Hero", 20)
			c.HP = tc.hp
			c.TempHP = tc.tempHP

			s.True(c.ApplyDamage(tc.amount))
			s.Equal(tc.wantHP, c.HP)
			s.Equal(tc.wantTempHP, c.TempHP)
			s.GreaterOrEqual(c.HP, 0)
			s.LessOrEqual(c.HP, c.MaxHP)
			s.GreaterOrEqual(c.TempHP, 0)
		})
	}
}

func (s *TransitionsTestSuite) TestApplyHealing() {
	c := combat.NewHero("h", "Hero", 20)
	c.HP = 5

	s.True(c.ApplyHealing(6))
	s.Equal(11, c.HP)

	s.True(c.ApplyHealing(100))
	s.Equal(20, c.HP)

	s.True(c.ApplyHealing(5))
	s.True(c.ApplyHealing(-5))
	s.Equal(20, c.HP)

	s.Run("huge amounts cap at max hp", func() {
		hero := combat.NewHero("h2", "Hero", 20)
		hero.HP = 15

		s.True(hero.ApplyHealing(math.MaxInt))
		s.Equal(20, hero.HP)

		hero.HP = 0
		s.True(hero.ApplyHealing(math.MaxInt))
		s.Equal(20, hero.HP)
	})
}

func (s *TransitionsTestSuite) TestSetTempHP() {
	c := combat.NewHero("h", "Hero", 20)

	s.True(c.SetTempHP(7))
	s.Equal(7, c.TempHP)

	s.True(c.SetTempHP(-3))
	s.Equal(0, c.TempHP)
}

func (s *TransitionsTestSuite) TestSetMaxHPClampsHP() {
	c := combat.NewHero("h", "Hero", 20)

	s.True(c.SetMaxHP(12))
	s.Equal(12, c.HP)
	s.Equal(12, c.MaxHP)

	s.True(c.SetMaxHP(30))
	s.Equal(12, c.HP)
}

func (s *TransitionsTestSuite) TestConditions() {
	c := combat.NewHero("h", "Hero", 20)

	c.AddCondition(combat.Condition{Name: "bleeding", Duration: intPtr(2)})
	c.AddCondition(combat.Condition{Name: "prone"})
	c.AddCondition(combat.Condition{Name: "bleeding", Duration: intPtr(5)})
	s.True(c.HasCondition("prone"))

	s.Run("update touches the first match only", func() {
		s.True(c.UpdateConditionDuration("bleeding", intPtr(4)))
		s.Equal(4, *c.Conditions[0].Duration)
		s.Equal(5, *c.Conditions[2].Duration)
	})

	s.Run("update can clear the duration", func() {
		s.True(c.UpdateConditionDuration("bleeding", nil))
		s.Nil(c.Conditions[0].Duration)
	})

	s.Run("remove drops the first match only", func() {
		s.True(c.RemoveCondition("bleeding"))
		s.Len(c.Conditions, 2)
		s.Equal("prone", c.Conditions[0].Name)
		s.Equal(5, *c.Conditions[1].Duration)
	})

	s.False(c.RemoveCondition("stunned"))
	s.False(c.UpdateConditionDuration("stunned", intPtr(1)))
}

func (s *TransitionsTestSuite) TestTickConditions() {
	s.withRoster("a", "b")
	s.session.Combatants[0].AddCondition(combat.Condition{Name: "dazed", Duration: intPtr(1)})
	s.session.Combatants[0].AddCondition(combat.Condition{Name: "prone"})
	s.session.Combatants[1].AddCondition(combat.Condition{Name: "slowed", Duration: intPtr(2)})

	s.True(s.session.TickConditions())
	s.Equal([]combat.Condition{{Name: "prone"}}, s.session.Combatants[0].Conditions)
	s.Equal(1, *s.session.Combatants[1].Conditions[0].Duration)

	s.True(s.session.TickConditions())
	s.Empty(s.session.Combatants[1].Conditions)

	s.True(s.session.TickConditions())
	s.Equal([]combat.Condition{{Name: "prone"}}, s.session.Combatants[0].Conditions)
}

func (s *TransitionsTestSuite) TestResourcePools() {
	s.True(s.session.SetHeroPoints(5))
	s.Equal(5, s.session.HeroPoints)
	s.True(s.session.SetHeroPoints(-2))
	s.Equal(0, s.session.HeroPoints)
	s.True(s.session.SetHeroPoints(0))

	s.True(s.session.SetVictoryPoints(2))
	s.Equal(2, s.session.VictoryPoints)
	s.True(s.session.SetVictoryPoints(-1))
	s.Equal(0, s.session.VictoryPoints)
}

func (s *TransitionsTestSuite) TestAppendLogStampsRoundAndTurn() {
	s.withRoster("a", "b")
	s.session.Start()
	s.session.NextTurn()

	entry := s.session.AppendLog(combat.LogEntry{
		ID:        "log_1",
		Timestamp: s.now,
		Entry:     map[string]any{"type": "damage", "amount": 4},
	})

	s.Equal(1, entry.Round)
	s.Equal(1, entry.Turn)
	s.Require().Len(s.session.Log, 1)
	s.Equal("damage", s.session.Log[0].Entry["type"])
}

func (s *TransitionsTestSuite) TestGroups() {
	s.withRoster("a", "b")

	group := s.session.AddGroup("g1", "Goblins", []string{"a", "missing", "b", "a"})
	s.Equal([]string{"a", "b"}, group.CombatantIDs)
	s.Len(s.session.Groups, 1)

	s.False(s.session.RemoveGroup("g2"))
	s.True(s.session.RemoveGroup("g1"))
	s.Empty(s.session.Groups)
}

func (s *TransitionsTestSuite) TestCloneSharesNothing() {
	s.withRoster("a")
	s.session.Combatants[0].AddCondition(combat.Condition{Name: "dazed", Duration: intPtr(2)})
	s.session.Combatants[0].ArmorClass = intPtr(15)
	s.session.Combatants[0].HeroicResource = &combat.HeroicResource{Name: "Focus", Value: 2}
	s.session.AddGroup("g1", "Party", []string{"a"})
	s.session.AppendLog(combat.LogEntry{ID: "l1", Entry: map[string]any{"note": "start"}})

	clone := s.session.Clone()
	s.Equal(s.session, clone)

	clone.Combatants[0].HP = 1
	*clone.Combatants[0].Conditions[0].Duration = 9
	*clone.Combatants[0].ArmorClass = 10
	clone.Combatants[0].HeroicResource.Value = 0
	clone.Groups[0].CombatantIDs[0] = "x"
	clone.Log[0].Entry["note"] = "changed"

	s.Equal(20, s.session.Combatants[0].HP)
	s.Equal(2, *s.session.Combatants[0].Conditions[0].Duration)
	s.Equal(15, *s.session.Combatants[0].ArmorClass)
	s.Equal(2, s.session.Combatants[0].HeroicResource.Value)
	s.Equal("a", s.session.Groups[0].CombatantIDs[0])
	s.Equal("start", s.session.Log[0].Entry["note"])

	var nilSession *combat.Session
	s.Nil(nilSession.Clone())
}
