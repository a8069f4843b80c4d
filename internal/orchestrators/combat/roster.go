package combat

import (
	"context"
	"log/slog"

	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
)

func (o *orchestrator) AddHeroCombatant(ctx context.Context, input *AddHeroInput) (*AddCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMin("max_hp", input.MaxHP, 1, vb)
	if input.HeroicResource != nil {
		errors.ValidateRequired("heroic_resource.name", input.HeroicResource.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	hero := entity.NewHero(o.idGen.Generate(), input.Name, input.MaxHP)
	hero.EntityID = input.EntityID
	hero.ArmorClass = copyInt(input.ArmorClass)
	if input.HeroicResource != nil {
		resource := *input.HeroicResource
		hero.HeroicResource = &resource
	}

	return o.addCombatant(ctx, input.ID, hero)
}

func (o *orchestrator) AddCreatureCombatant(ctx context.Context, input *AddCreatureInput) (*AddCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	threat := input.Threat
	if threat == "" {
		threat = entity.ThreatTroop
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMin("max_hp", input.MaxHP, 1, vb)
	if !threat.Valid() {
		vb.Field("threat", "must be one of: boss, captain, troop")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	creature := entity.NewCreature(o.idGen.Generate(), input.Name, input.MaxHP, threat)
	creature.EntityID = input.EntityID
	creature.ArmorClass = copyInt(input.ArmorClass)

	return o.addCombatant(ctx, input.ID, creature)
}

func (o *orchestrator) addCombatant(ctx context.Context, id string, combatant entity.Combatant) (*AddCombatantOutput, error) {
	session, err := o.mutateExisting(ctx, id, func(s *entity.Session) bool {
		s.AddCombatant(combatant)
		return true
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "combatant added",
		"session_id", id,
		"combatant_id", combatant.ID,
		"kind", combatant.Kind)

	return &AddCombatantOutput{
		Session:   session,
		Combatant: session.Combatant(combatant.ID),
	}, nil
}

func (o *orchestrator) RemoveCombatant(ctx context.Context, input *CombatantInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		return s.RemoveCombatant(input.CombatantID)
	}))
}

func (o *orchestrator) UpdateCombatant(ctx context.Context, input *UpdateCombatantInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	if input.Name != nil {
		errors.ValidateRequired("name", *input.Name, vb)
	}
	if input.MaxHP != nil {
		errors.ValidateMin("max_hp", *input.MaxHP, 1, vb)
	}
	if input.Threat != nil && !input.Threat.Valid() {
		vb.Field("threat", "must be one of: boss, captain, troop")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.MaxHP != nil {
			c.SetMaxHP(*input.MaxHP)
		}
		if input.ArmorClass != nil {
			c.ArmorClass = copyInt(input.ArmorClass)
		}
		if input.HeroicResource != nil && c.IsHero() {
			resource := *input.HeroicResource
			c.HeroicResource = &resource
		}
		if input.Threat != nil && !c.IsHero() {
			c.Threat = *input.Threat
		}
		return true
	}))
}

func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.SetInitiative(input.Roll1, input.Roll2)
	}))
}

func (o *orchestrator) RollInitiativeDice(ctx context.Context, input *CombatantInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}

	rolls, err := o.roller.RollN(2, o.initiativeDie)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll initiative")
	}
	if len(rolls) != 2 {
		return nil, errors.Internalf("expected 2 initiative dice, got %d", len(rolls))
	}

	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.SetInitiative(rolls[0], rolls[1])
	}))
}

func (o *orchestrator) ApplyDamage(ctx context.Context, input *AmountInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.ApplyDamage(input.Amount)
	}))
}

func (o *orchestrator) ApplyHealing(ctx context.Context, input *AmountInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.ApplyHealing(input.Amount)
	}))
}

func (o *orchestrator) SetTempHP(ctx context.Context, input *AmountInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireCombatant(input.ID, input.CombatantID); err != nil {
		return nil, err
	}
	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.SetTempHP(input.Amount)
	}))
}

func (o *orchestrator) AddCondition(ctx context.Context, input *AddConditionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Duration != nil {
		errors.ValidateMin("duration", *input.Duration, 1, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		c.AddCondition(entity.Condition{Name: input.Name, Duration: copyInt(input.Duration)})
		return true
	}))
}

func (o *orchestrator) RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.RemoveCondition(input.Name)
	}))
}

func (o *orchestrator) UpdateConditionDuration(ctx context.Context, input *UpdateConditionDurationInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Duration != nil {
		errors.ValidateMin("duration", *input.Duration, 1, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return sessionOutput(o.mutateCombatant(ctx, input.ID, input.CombatantID, func(c *entity.Combatant) bool {
		return c.UpdateConditionDuration(input.Name, input.Duration)
	}))
}

func (o *orchestrator) AddGroup(ctx context.Context, input *AddGroupInput) (*AddGroupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	groupID := o.idGen.Generate()
	session, err := o.mutateExisting(ctx, input.ID, func(s *entity.Session) bool {
		s.AddGroup(groupID, input.Name, input.CombatantIDs)
		return true
	})
	if err != nil {
		return nil, err
	}

	var group *entity.Group
	for i := range session.Groups {
		if session.Groups[i].ID == groupID {
			group = &session.Groups[i]
			break
		}
	}

	return &AddGroupOutput{Session: session, Group: group}, nil
}

func (o *orchestrator) RemoveGroup(ctx context.Context, input *RemoveGroupInput) (*SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("group_id", input.GroupID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return sessionOutput(o.mutate(ctx, input.ID, func(s *entity.Session) bool {
		return s.RemoveGroup(input.GroupID)
	}))
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
