package combat_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-campaign-api/internal/pkg/idgen/mock"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
	combatsessionsmock "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions/mock"
)

type stubRoller struct {
	rolls []int
	err   error
	sizes []int
}

func (r *stubRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return 0, r.err
	}
	return r.rolls[0], nil
}

func (r *stubRoller) RollN(count, size int) ([]int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return nil, r.err
	}
	return r.rolls[:count], nil
}

type OrchestratorTestSuite struct {
	suite.Suite

	ctx    context.Context
	clock  *clock.Fixed
	repo   *combatsessions.InMemoryRepository
	roller *stubRoller
	orch   combat.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC))
	s.repo = combatsessions.NewInMemory()
	s.roller = &stubRoller{rolls: []int{7, 3}}

	orch, err := combat.NewOrchestrator(&combat.Config{
		Repository:  s.repo,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("id"),
		DiceRoller:  s.roller,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.NoError(s.orch.Close())
}

// createWithRoster creates a session holding one hero per name
func (s *OrchestratorTestSuite) createWithRoster(names ...string) (*entity.Session, []string) {
	created, err := s.orch.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Skirmish"})
	s.Require().NoError(err)

	ids := make([]string, 0, len(names))
	for _, name := range names {
		out, err := s.orch.AddHeroCombatant(s.ctx, &combat.AddHeroInput{ID: created.Session.ID, Name: name, MaxHP: 20})
		s.Require().NoError(err)
		ids = append(ids, out.Combatant.ID)
	}

	got, err := s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: created.Session.ID})
	s.Require().NoError(err)
	return got.Session, ids
}

func (s *OrchestratorTestSuite) stored(id string) *entity.Session {
	out, err := s.repo.Get(s.ctx, combatsessions.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Session
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := combat.NewOrchestrator(&combat.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")

	_, err = combat.NewOrchestrator(nil)
	s.Error(err)

	_, err = combat.NewOrchestrator(&combat.Config{
		Repository:    s.repo,
		Clock:         s.clock,
		IDGenerator:   idgen.NewSequential("id"),
		InitiativeDie: 1,
	})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestCreateCombat() {
	out, err := s.orch.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Bandits", Description: "On the road"})
	s.Require().NoError(err)

	session := out.Session
	s.Equal("id_1", session.ID)
	s.Equal("Bandits", session.Name)
	s.Equal("On the road", session.Description)
	s.Equal(entity.StatusPreparing, session.Status)
	s.Equal(0, session.CurrentRound)
	s.Equal(0, session.CurrentTurn)
	s.Equal(3, session.HeroPoints)
	s.Equal(0, session.VictoryPoints)
	s.Empty(session.Combatants)
	s.Empty(session.Log)
	s.Equal(s.clock.Now(), session.CreatedAt)

	s.Equal(session, s.stored(session.ID))

	s.Run("name is required", func() {
		_, err := s.orch.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "  "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orch.CreateCombat(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestLifecycle() {
	session, _ := s.createWithRoster("Ayla", "Brom")

	s.clock.Advance(time.Minute)
	started, err := s.orch.StartCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(entity.StatusActive, started.Session.Status)
	s.Equal(1, started.Session.CurrentRound)
	s.Equal(0, started.Session.CurrentTurn)
	s.Equal(s.clock.Now(), started.Session.UpdatedAt)

	paused, err := s.orch.PauseCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(entity.StatusPaused, paused.Session.Status)
	s.Equal(1, paused.Session.CurrentRound)

	resumed, err := s.orch.ResumeCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(entity.StatusActive, resumed.Session.Status)

	ended, err := s.orch.EndCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(entity.StatusCompleted, ended.Session.Status)
	s.Equal(entity.StatusCompleted, s.stored(session.ID).Status)
}

func (s *OrchestratorTestSuite) TestTurnOrder() {
	session, _ := s.createWithRoster("a", "b", "c")
	id := &combat.SessionInput{ID: session.ID}

	_, err := s.orch.StartCombat(s.ctx, id)
	s.Require().NoError(err)

	for range 2 {
		_, err = s.orch.NextTurn(s.ctx, id)
		s.Require().NoError(err)
	}

	out, err := s.orch.NextTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(0, out.Session.CurrentTurn)
	s.Equal(2, out.Session.CurrentRound)

	out, err = s.orch.PreviousTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(2, out.Session.CurrentTurn)
	s.Equal(1, out.Session.CurrentRound)

	out, err = s.orch.PreviousTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(1, out.Session.CurrentTurn)

	out, err = s.orch.GoToTurn(s.ctx, &combat.GoToTurnInput{ID: session.ID, Index: 0})
	s.Require().NoError(err)
	s.Equal(0, out.Session.CurrentTurn)

	s.Run("out of range index is ignored", func() {
		out, err := s.orch.GoToTurn(s.ctx, &combat.GoToTurnInput{ID: session.ID, Index: 3})
		s.Require().NoError(err)
		s.Equal(0, out.Session.CurrentTurn)
	})

	s.Run("previous turn at round 1 turn 0 stays in round 1", func() {
		out, err := s.orch.PreviousTurn(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(2, out.Session.CurrentTurn)
		s.Equal(1, out.Session.CurrentRound)
	})
}

func (s *OrchestratorTestSuite) TestTurnsOnEmptyRosterAreNoOps() {
	session, _ := s.createWithRoster()
	id := &combat.SessionInput{ID: session.ID}

	s.clock.Advance(time.Hour)

	out, err := s.orch.NextTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(0, out.Session.CurrentTurn)
	s.Equal(session.UpdatedAt, out.Session.UpdatedAt)

	out, err = s.orch.PreviousTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(0, out.Session.CurrentTurn)
	s.Equal(session.UpdatedAt, s.stored(session.ID).UpdatedAt)
}

func (s *OrchestratorTestSuite) TestMutationsWithoutVisibleChangeStillStamp() {
	session, ids := s.createWithRoster("a", "b")
	id := &combat.SessionInput{ID: session.ID}

	_, err := s.orch.PauseCombat(s.ctx, id)
	s.Require().NoError(err)

	steps := map[string]func() (*combat.SessionOutput, error){
		"pause again": func() (*combat.SessionOutput, error) {
			return s.orch.PauseCombat(s.ctx, id)
		},
		"go to the current turn": func() (*combat.SessionOutput, error) {
			return s.orch.GoToTurn(s.ctx, &combat.GoToTurnInput{ID: session.ID, Index: 0})
		},
		"heal at full hp": func() (*combat.SessionOutput, error) {
			return s.orch.ApplyHealing(s.ctx, &combat.AmountInput{ID: session.ID, CombatantID: ids[0], Amount: 5})
		},
		"same hero points": func() (*combat.SessionOutput, error) {
			return s.orch.UpdateHeroPoints(s.ctx, &combat.PointsInput{ID: session.ID, Amount: entity.DefaultHeroPoints})
		},
		"sort an unrolled roster": func() (*combat.SessionOutput, error) {
			return s.orch.SortByInitiative(s.ctx, id)
		},
	}

	for name, step := range steps {
		s.Run(name, func() {
			s.clock.Advance(time.Minute)

			out, err := step()
			s.Require().NoError(err)
			s.Require().NotNil(out.Session)
			s.Equal(s.clock.Now(), out.Session.UpdatedAt)
			s.Equal(s.clock.Now(), s.stored(session.ID).UpdatedAt)
		})
	}

	s.Run("out of range turn stays untouched", func() {
		before := s.stored(session.ID).UpdatedAt
		s.clock.Advance(time.Minute)

		out, err := s.orch.GoToTurn(s.ctx, &combat.GoToTurnInput{ID: session.ID, Index: 9})
		s.Require().NoError(err)
		s.Equal(before, out.Session.UpdatedAt)
		s.Equal(before, s.stored(session.ID).UpdatedAt)
	})
}

func (s *OrchestratorTestSuite) TestMissingSessionIsNoOp() {
	missing := &combat.SessionInput{ID: "ghost"}

	ops := map[string]func() (*combat.SessionOutput, error){
		"start":     func() (*combat.SessionOutput, error) { return s.orch.StartCombat(s.ctx, missing) },
		"pause":     func() (*combat.SessionOutput, error) { return s.orch.PauseCombat(s.ctx, missing) },
		"next turn": func() (*combat.SessionOutput, error) { return s.orch.NextTurn(s.ctx, missing) },
		"damage": func() (*combat.SessionOutput, error) {
			return s.orch.ApplyDamage(s.ctx, &combat.AmountInput{ID: "ghost", CombatantID: "c", Amount: 3})
		},
		"hero points": func() (*combat.SessionOutput, error) {
			return s.orch.UpdateHeroPoints(s.ctx, &combat.PointsInput{ID: "ghost", Amount: 2})
		},
		"remove combatant": func() (*combat.SessionOutput, error) {
			return s.orch.RemoveCombatant(s.ctx, &combat.CombatantInput{ID: "ghost", CombatantID: "c"})
		},
	}

	for name, op := range ops {
		s.Run(name, func() {
			out, err := op()
			s.NoError(err)
			s.Require().NotNil(out)
			s.Nil(out.Session)
		})
	}

	log, err := s.orch.AddLogEntry(s.ctx, &combat.AddLogEntryInput{ID: "ghost", Entry: map[string]any{"x": 1}})
	s.NoError(err)
	s.Nil(log.Session)

	_, err = s.orch.GetCombat(s.ctx, missing)
	s.True(errors.IsNotFound(err))

	_, err = s.orch.GetSummary(s.ctx, missing)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreationStyleOpsFailOnMissingSession() {
	_, err := s.orch.AddHeroCombatant(s.ctx, &combat.AddHeroInput{ID: "ghost", Name: "Ayla", MaxHP: 10})
	s.True(errors.IsNotFound(err))
	s.Equal("ghost", errors.GetMeta(err)["session_id"])

	_, err = s.orch.AddCreatureCombatant(s.ctx, &combat.AddCreatureInput{ID: "ghost", Name: "Orc", MaxHP: 10})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.AddGroup(s.ctx, &combat.AddGroupInput{ID: "ghost", Name: "Orcs"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAddCombatants() {
	session, _ := s.createWithRoster()

	armor := 17
	hero, err := s.orch.AddHeroCombatant(s.ctx, &combat.AddHeroInput{
		ID:             session.ID,
		Name:           "Ayla",
		EntityID:       "npc-42",
		MaxHP:          28,
		ArmorClass:     &armor,
		HeroicResource: &entity.HeroicResource{Name: "Focus", Value: 2},
	})
	s.Require().NoError(err)
	s.Equal(entity.KindHero, hero.Combatant.Kind)
	s.Equal(28, hero.Combatant.HP)
	s.Equal(0, hero.Combatant.TempHP)
	s.Equal(0, hero.Combatant.Initiative)
	s.Empty(hero.Combatant.Conditions)
	s.Equal(17, *hero.Combatant.ArmorClass)
	s.Equal("Focus", hero.Combatant.HeroicResource.Name)

	creature, err := s.orch.AddCreatureCombatant(s.ctx, &combat.AddCreatureInput{ID: session.ID, Name: "Goblin", MaxHP: 7})
	s.Require().NoError(err)
	s.Equal(entity.KindCreature, creature.Combatant.Kind)
	s.Equal(entity.ThreatTroop, creature.Combatant.Threat)
	s.Len(creature.Session.Combatants, 2)
	s.Equal(hero.Combatant.ID, creature.Session.Combatants[0].ID)

	s.Run("validation", func() {
		_, err := s.orch.AddHeroCombatant(s.ctx, &combat.AddHeroInput{ID: session.ID, MaxHP: 0})
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "name")
		s.Contains(err.Error(), "max_hp")

		_, err = s.orch.AddCreatureCombatant(s.ctx, &combat.AddCreatureInput{ID: session.ID, Name: "Orc", MaxHP: 5, Threat: "minion"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRemoveCombatantClampsTurn() {
	session, ids := s.createWithRoster("a", "b", "c")
	_, err := s.orch.GoToTurn(s.ctx, &combat.GoToTurnInput{ID: session.ID, Index: 2})
	s.Require().NoError(err)

	group, err := s.orch.AddGroup(s.ctx, &combat.AddGroupInput{ID: session.ID, Name: "Back line", CombatantIDs: ids[1:]})
	s.Require().NoError(err)

	out, err := s.orch.RemoveCombatant(s.ctx, &combat.CombatantInput{ID: session.ID, CombatantID: ids[2]})
	s.Require().NoError(err)
	s.Len(out.Session.Combatants, 2)
	s.Equal(1, out.Session.CurrentTurn)
	s.Equal([]string{ids[1]}, out.Session.Groups[0].CombatantIDs)
	s.Equal(group.Group.ID, out.Session.Groups[0].ID)

	s.Run("unknown combatant returns the unchanged session", func() {
		out, err := s.orch.RemoveCombatant(s.ctx, &combat.CombatantInput{ID: session.ID, CombatantID: "nobody"})
		s.Require().NoError(err)
		s.Len(out.Session.Combatants, 2)
	})
}

func (s *OrchestratorTestSuite) TestInitiative() {
	session, ids := s.createWithRoster("a", "b", "c")

	rolls := [][2]int{{2, 3}, {9, 8}, {4, 1}}
	for i, id := range ids {
		_, err := s.orch.RollInitiative(s.ctx, &combat.RollInitiativeInput{
			ID: session.ID, CombatantID: id, Roll1: rolls[i][0], Roll2: rolls[i][1],
		})
		s.Require().NoError(err)
	}

	out, err := s.orch.SortByInitiative(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(ids[1], out.Session.Combatants[0].ID)
	s.Equal(17, out.Session.Combatants[0].Initiative)
	s.Equal([2]int{9, 8}, out.Session.Combatants[0].InitiativeRoll)
	s.Equal(ids[0], out.Session.Combatants[1].ID)
	s.Equal(ids[2], out.Session.Combatants[2].ID)

	s.Run("dice", func() {
		out, err := s.orch.RollInitiativeDice(s.ctx, &combat.CombatantInput{ID: session.ID, CombatantID: ids[2]})
		s.Require().NoError(err)
		c := out.Session.Combatant(ids[2])
		s.Equal([2]int{7, 3}, c.InitiativeRoll)
		s.Equal(10, c.Initiative)
		s.Equal([]int{combat.DefaultInitiativeDie}, s.roller.sizes)
	})

	s.Run("roller failure", func() {
		s.roller.err = fmt.Errorf("entropy exhausted")
		_, err := s.orch.RollInitiativeDice(s.ctx, &combat.CombatantInput{ID: session.ID, CombatantID: ids[0]})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestDamageHealingAndTempHP() {
	session, ids := s.createWithRoster("a")
	target := &combat.AmountInput{ID: session.ID, CombatantID: ids[0]}

	target.Amount = 5
	_, err := s.orch.SetTempHP(s.ctx, target)
	s.Require().NoError(err)

	target.Amount = 8
	out, err := s.orch.ApplyDamage(s.ctx, target)
	s.Require().NoError(err)
	s.Equal(0, out.Session.Combatants[0].TempHP)
	s.Equal(17, out.Session.Combatants[0].HP)

	target.Amount = 100
	out, err = s.orch.ApplyDamage(s.ctx, target)
	s.Require().NoError(err)
	s.Equal(0, out.Session.Combatants[0].HP)

	target.Amount = 6
	out, err = s.orch.ApplyHealing(s.ctx, target)
	s.Require().NoError(err)
	s.Equal(6, out.Session.Combatants[0].HP)

	target.Amount = 50
	out, err = s.orch.ApplyHealing(s.ctx, target)
	s.Require().NoError(err)
	s.Equal(20, out.Session.Combatants[0].HP)

	target.Amount = -3
	out, err = s.orch.SetTempHP(s.ctx, target)
	s.Require().NoError(err)
	s.Equal(0, out.Session.Combatants[0].TempHP)

	s.Equal(20, s.stored(session.ID).Combatants[0].HP)

	s.Run("unknown combatant is a no-op", func() {
		out, err := s.orch.ApplyDamage(s.ctx, &combat.AmountInput{ID: session.ID, CombatantID: "nobody", Amount: 4})
		s.Require().NoError(err)
		s.Equal(20, out.Session.Combatants[0].HP)
	})

	s.Run("combatant id is required", func() {
		_, err := s.orch.ApplyDamage(s.ctx, &combat.AmountInput{ID: session.ID, Amount: 4})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateCombatant() {
	session, _ := s.createWithRoster()
	creature, err := s.orch.AddCreatureCombatant(s.ctx, &combat.AddCreatureInput{ID: session.ID, Name: "Ogre", MaxHP: 40})
	s.Require().NoError(err)

	name := "Ogre Chief"
	maxHP := 25
	threat := entity.ThreatBoss
	out, err := s.orch.UpdateCombatant(s.ctx, &combat.UpdateCombatantInput{
		ID:          session.ID,
		CombatantID: creature.Combatant.ID,
		Name:        &name,
		MaxHP:       &maxHP,
		Threat:      &threat,
	})
	s.Require().NoError(err)

	c := out.Session.Combatant(creature.Combatant.ID)
	s.Equal("Ogre Chief", c.Name)
	s.Equal(25, c.MaxHP)
	s.Equal(25, c.HP)
	s.Equal(entity.ThreatBoss, c.Threat)
}

func (s *OrchestratorTestSuite) TestConditions() {
	session, ids := s.createWithRoster("a")
	two := 2

	_, err := s.orch.AddCondition(s.ctx, &combat.AddConditionInput{ID: session.ID, CombatantID: ids[0], Name: "dazed", Duration: &two})
	s.Require().NoError(err)
	out, err := s.orch.AddCondition(s.ctx, &combat.AddConditionInput{ID: session.ID, CombatantID: ids[0], Name: "prone"})
	s.Require().NoError(err)
	s.Len(out.Session.Combatants[0].Conditions, 2)

	three := 3
	out, err = s.orch.UpdateConditionDuration(s.ctx, &combat.UpdateConditionDurationInput{ID: session.ID, CombatantID: ids[0], Name: "dazed", Duration: &three})
	s.Require().NoError(err)
	s.Equal(3, *out.Session.Combatants[0].Conditions[0].Duration)

	out, err = s.orch.TickConditions(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(2, *out.Session.Combatants[0].Conditions[0].Duration)

	out, err = s.orch.RemoveCondition(s.ctx, &combat.RemoveConditionInput{ID: session.ID, CombatantID: ids[0], Name: "prone"})
	s.Require().NoError(err)
	s.Len(out.Session.Combatants[0].Conditions, 1)

	s.Run("condition name is required", func() {
		_, err := s.orch.AddCondition(s.ctx, &combat.AddConditionInput{ID: session.ID, CombatantID: ids[0]})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestPointsAndLog() {
	session, _ := s.createWithRoster("a")
	_, err := s.orch.StartCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)

	out, err := s.orch.UpdateHeroPoints(s.ctx, &combat.PointsInput{ID: session.ID, Amount: -4})
	s.Require().NoError(err)
	s.Equal(0, out.Session.HeroPoints)

	out, err = s.orch.UpdateVictoryPoints(s.ctx, &combat.PointsInput{ID: session.ID, Amount: 2})
	s.Require().NoError(err)
	s.Equal(2, out.Session.VictoryPoints)

	s.clock.Advance(30 * time.Second)
	entry := map[string]any{"type": "note", "text": "the bridge collapses"}
	logged, err := s.orch.AddLogEntry(s.ctx, &combat.AddLogEntryInput{ID: session.ID, Entry: entry})
	s.Require().NoError(err)
	s.Require().NotNil(logged.Entry)
	s.Equal(1, logged.Entry.Round)
	s.Equal(0, logged.Entry.Turn)
	s.Equal(s.clock.Now(), logged.Entry.Timestamp)
	s.Equal("the bridge collapses", logged.Entry.Entry["text"])

	entry["text"] = "mutated by caller"
	s.Equal("the bridge collapses", s.stored(session.ID).Log[0].Entry["text"])

	_, err = s.orch.AddLogEntry(s.ctx, &combat.AddLogEntryInput{ID: session.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestActiveCombatAndDelete() {
	first, _ := s.createWithRoster()
	second, _ := s.createWithRoster()

	out, err := s.orch.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{ID: first.ID})
	s.Require().NoError(err)
	s.Equal(first.ID, out.ActiveID)

	_, err = s.orch.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{ID: "ghost"})
	s.Require().NoError(err)

	active, err := s.orch.GetActiveCombat(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.ID, active.Session.ID)

	deleted, err := s.orch.DeleteCombat(s.ctx, &combat.DeleteCombatInput{ID: first.ID})
	s.Require().NoError(err)
	s.True(deleted.Deleted)

	active, err = s.orch.GetActiveCombat(s.ctx)
	s.Require().NoError(err)
	s.Nil(active.Session)

	_, err = s.repo.Get(s.ctx, combatsessions.GetInput{ID: first.ID})
	s.True(errors.IsNotFound(err))

	s.Run("deleting an unknown id is a no-op", func() {
		out, err := s.orch.DeleteCombat(s.ctx, &combat.DeleteCombatInput{ID: "ghost"})
		s.Require().NoError(err)
		s.False(out.Deleted)
	})

	s.Run("clearing the active session", func() {
		_, err := s.orch.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{ID: second.ID})
		s.Require().NoError(err)
		out, err := s.orch.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{})
		s.Require().NoError(err)
		s.Empty(out.ActiveID)
	})
}

func (s *OrchestratorTestSuite) TestListCombats() {
	older, _ := s.createWithRoster()
	s.clock.Advance(time.Minute)
	newer, _ := s.createWithRoster()
	s.clock.Advance(time.Minute)
	_, err := s.orch.StartCombat(s.ctx, &combat.SessionInput{ID: older.ID})
	s.Require().NoError(err)

	all, err := s.orch.ListCombats(s.ctx, &combat.ListCombatsInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Sessions, 2)
	s.Equal(older.ID, all.Sessions[0].ID)
	s.Equal(newer.ID, all.Sessions[1].ID)

	active, err := s.orch.ListCombats(s.ctx, &combat.ListCombatsInput{Status: entity.StatusActive})
	s.Require().NoError(err)
	s.Len(active.Sessions, 1)

	_, err = s.orch.ListCombats(s.ctx, &combat.ListCombatsInput{Status: "fleeing"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSyncReloadsFromRepository() {
	session, _ := s.createWithRoster("a")
	_, err := s.orch.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{ID: session.ID})
	s.Require().NoError(err)

	external := session.Clone()
	external.ID = "imported"
	_, err = s.repo.Create(s.ctx, combatsessions.CreateInput{Session: external})
	s.Require().NoError(err)
	_, err = s.repo.Delete(s.ctx, combatsessions.DeleteInput{ID: session.ID})
	s.Require().NoError(err)

	out, err := s.orch.Sync(s.ctx, &combat.SyncInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Loaded)

	_, err = s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: "imported"})
	s.NoError(err)

	active, err := s.orch.GetActiveCombat(s.ctx)
	s.Require().NoError(err)
	s.Nil(active.Session)
}

func (s *OrchestratorTestSuite) TestGetSummary() {
	session, ids := s.createWithRoster("a", "b")
	_, err := s.orch.ApplyDamage(s.ctx, &combat.AmountInput{ID: session.ID, CombatantID: ids[1], Amount: 15})
	s.Require().NoError(err)

	out, err := s.orch.GetSummary(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(2, out.Summary.Heroes.Standing)
	s.Equal([]string{ids[1]}, out.Summary.Winded)
}

func (s *OrchestratorTestSuite) TestSnapshotsAreIsolated() {
	session, ids := s.createWithRoster("a")

	out, err := s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	out.Session.Combatants[0].HP = 1
	out.Session.Name = "tampered"

	again, err := s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.Equal(20, again.Session.Combatant(ids[0]).HP)
	s.Equal("Skirmish", again.Session.Name)
}

func (s *OrchestratorTestSuite) TestConcurrentMutations() {
	session, ids := s.createWithRoster("a", "b", "c")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.orch.NextTurn(s.ctx, &combat.SessionInput{ID: session.ID})
				return
			}
			_, _ = s.orch.ApplyDamage(s.ctx, &combat.AmountInput{ID: session.ID, CombatantID: ids[i%3], Amount: 1})
		}()
	}
	wg.Wait()

	out, err := s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: session.ID})
	s.Require().NoError(err)
	s.GreaterOrEqual(out.Session.CurrentTurn, 0)
	s.Less(out.Session.CurrentTurn, 3)
	for _, c := range out.Session.Combatants {
		s.GreaterOrEqual(c.HP, 0)
		s.LessOrEqual(c.HP, c.MaxHP)
	}
}

// EventSyncTestSuite covers the repository change feed keeping two
// orchestrators that share a bus in step
type EventSyncTestSuite struct {
	suite.Suite
	ctx     context.Context
	primary combat.Service
	replica combat.Service
}

func TestEventSyncSuite(t *testing.T) {
	suite.Run(t, new(EventSyncTestSuite))
}

func (s *EventSyncTestSuite) SetupTest() {
	s.ctx = context.Background()
	bus := events.NewBus()
	repo := combatsessions.WithEvents(combatsessions.NewInMemory(), bus)
	fixed := clock.NewFixed(time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC))
	ids := idgen.NewSequential("cs")

	var err error
	s.primary, err = combat.NewOrchestrator(&combat.Config{Repository: repo, Clock: fixed, IDGenerator: ids, EventBus: bus})
	s.Require().NoError(err)
	s.replica, err = combat.NewOrchestrator(&combat.Config{Repository: repo, Clock: fixed, IDGenerator: ids, EventBus: bus})
	s.Require().NoError(err)
}

func (s *EventSyncTestSuite) TearDownTest() {
	s.NoError(s.primary.Close())
	s.NoError(s.replica.Close())
}

func (s *EventSyncTestSuite) TestReplicaFollowsWrites() {
	created, err := s.primary.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Shared"})
	s.Require().NoError(err)
	id := created.Session.ID

	got, err := s.replica.GetCombat(s.ctx, &combat.SessionInput{ID: id})
	s.Require().NoError(err)
	s.Equal("Shared", got.Session.Name)

	_, err = s.primary.StartCombat(s.ctx, &combat.SessionInput{ID: id})
	s.Require().NoError(err)

	got, err = s.replica.GetCombat(s.ctx, &combat.SessionInput{ID: id})
	s.Require().NoError(err)
	s.Equal(entity.StatusActive, got.Session.Status)

	_, err = s.replica.SetActiveCombat(s.ctx, &combat.SetActiveCombatInput{ID: id})
	s.Require().NoError(err)

	_, err = s.primary.DeleteCombat(s.ctx, &combat.DeleteCombatInput{ID: id})
	s.Require().NoError(err)

	_, err = s.replica.GetCombat(s.ctx, &combat.SessionInput{ID: id})
	s.True(errors.IsNotFound(err))

	active, err := s.replica.GetActiveCombat(s.ctx)
	s.Require().NoError(err)
	s.Nil(active.Session)
}

func (s *EventSyncTestSuite) TestClosedOrchestratorStopsFollowing() {
	s.Require().NoError(s.replica.Close())

	created, err := s.primary.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Private"})
	s.Require().NoError(err)

	_, err = s.replica.GetCombat(s.ctx, &combat.SessionInput{ID: created.Session.ID})
	s.True(errors.IsNotFound(err))
}

// PersistenceTestSuite drives the orchestrator against a mocked repository
type PersistenceTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.Fixed
	ctrl     *gomock.Controller
	mockRepo *combatsessionsmock.MockRepository
	orch     combat.Service
	session  *entity.Session
}

func TestPersistenceSuite(t *testing.T) {
	suite.Run(t, new(PersistenceTestSuite))
}

func (s *PersistenceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = combatsessionsmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC))

	orch, err := combat.NewOrchestrator(&combat.Config{
		Repository:  s.mockRepo,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("cs"),
	})
	s.Require().NoError(err)
	s.orch = orch

	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(&combatsessions.CreateOutput{}, nil)
	created, err := s.orch.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Mocked"})
	s.Require().NoError(err)
	s.session = created.Session
}

func (s *PersistenceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PersistenceTestSuite) TestPausingTwiceWritesEachTime() {
	var written []time.Time
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatsessions.UpdateInput) (*combatsessions.UpdateOutput, error) {
			s.Equal(entity.StatusPaused, input.Session.Status)
			written = append(written, input.Session.UpdatedAt)
			return &combatsessions.UpdateOutput{Session: input.Session}, nil
		}).
		Times(2)

	for range 2 {
		s.clock.Advance(time.Minute)
		out, err := s.orch.PauseCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
		s.Require().NoError(err)
		s.Equal(entity.StatusPaused, out.Session.Status)
		s.Equal(s.clock.Now(), out.Session.UpdatedAt)
	}

	s.Require().Len(written, 2)
	s.True(written[1].After(written[0]))
}

func (s *PersistenceTestSuite) TestDeleteDuringUpdateKeepsSessionDeleted() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, combatsessions.DeleteInput{ID: s.session.ID}).
		Return(&combatsessions.DeleteOutput{}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input combatsessions.UpdateInput) (*combatsessions.UpdateOutput, error) {
			deleted, err := s.orch.DeleteCombat(ctx, &combat.DeleteCombatInput{ID: input.Session.ID})
			s.Require().NoError(err)
			s.True(deleted.Deleted)
			return &combatsessions.UpdateOutput{Session: input.Session}, nil
		})

	out, err := s.orch.StartCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
	s.Require().NoError(err)
	s.Nil(out.Session)

	_, err = s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.orch.ListCombats(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}

func (s *PersistenceTestSuite) TestUpdateFailureKeepsPreviousSnapshot() {
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orch.StartCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
	s.Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	got, err := s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
	s.Require().NoError(err)
	s.Equal(entity.StatusPreparing, got.Session.Status)
}

func (s *PersistenceTestSuite) TestCreateFailurePropagates() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err := s.orch.CreateCombat(s.ctx, &combat.CreateCombatInput{Name: "Doomed"})
	s.True(errors.IsInternal(err))

	list, err := s.orch.ListCombats(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(list.Sessions, 1)
}

func (s *PersistenceTestSuite) TestDeleteFailurePropagates() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, combatsessions.DeleteInput{ID: s.session.ID}).
		Return(nil, errors.Internal("disk full"))

	_, err := s.orch.DeleteCombat(s.ctx, &combat.DeleteCombatInput{ID: s.session.ID})
	s.True(errors.IsInternal(err))

	_, err = s.orch.GetCombat(s.ctx, &combat.SessionInput{ID: s.session.ID})
	s.NoError(err)
}

func (s *PersistenceTestSuite) TestSyncFailurePropagates() {
	s.mockRepo.EXPECT().
		List(s.ctx, combatsessions.ListInput{}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orch.Sync(s.ctx, &combat.SyncInput{})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestSessionsUseInjectedClockAndIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mockclock.NewMockClock(ctrl)
	mockIDs := idgenmock.NewMockGenerator(ctrl)

	createdAt := time.Date(2026, 2, 10, 20, 0, 0, 0, time.UTC)
	startedAt := createdAt.Add(5 * time.Minute)

	gomock.InOrder(
		mockIDs.EXPECT().Generate().Return("cs-42"),
		mockClock.EXPECT().Now().Return(createdAt),
		mockClock.EXPECT().Now().Return(startedAt),
	)

	orch, err := combat.NewOrchestrator(&combat.Config{
		Repository:  combatsessions.NewInMemory(),
		Clock:       mockClock,
		IDGenerator: mockIDs,
	})
	require.NoError(t, err)

	ctx := context.Background()
	created, err := orch.CreateCombat(ctx, &combat.CreateCombatInput{Name: "Ambush"})
	require.NoError(t, err)
	assert.Equal(t, "cs-42", created.Session.ID)
	assert.Equal(t, createdAt, created.Session.CreatedAt)

	started, err := orch.StartCombat(ctx, &combat.SessionInput{ID: "cs-42"})
	require.NoError(t, err)
	assert.Equal(t, createdAt, started.Session.CreatedAt)
	assert.Equal(t, startedAt, started.Session.UpdatedAt)
}
