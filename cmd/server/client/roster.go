package client

import (
	"context"

	"github.com/spf13/cobra"

	combatclient "github.com/KirkDiggler/rpg-campaign-api/internal/clients/combat"
	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/combat/v1alpha1"
)

var (
	combatantID string
	entityID    string
	maxHP       int
	armorClass  int
	threat      string
	amount      int
	roll1       int
	roll2       int
)

var addHeroCmd = &cobra.Command{
	Use:   "add-hero",
	Short: "Add a hero to the roster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.AddHeroCombatant(ctx, &v1alpha1.AddHeroRequest{
				ID:         sessionID,
				Name:       name,
				EntityID:   entityID,
				MaxHP:      maxHP,
				ArmorClass: optionalInt(cmd, "armor-class", armorClass),
			})
		})
	},
}

var addCreatureCmd = &cobra.Command{
	Use:   "add-creature",
	Short: "Add a creature to the roster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.AddCreatureCombatant(ctx, &v1alpha1.AddCreatureRequest{
				ID:         sessionID,
				Name:       name,
				EntityID:   entityID,
				MaxHP:      maxHP,
				ArmorClass: optionalInt(cmd, "armor-class", armorClass),
				Threat:     entity.ThreatTier(threat),
			})
		})
	},
}

var rollInitiativeCmd = &cobra.Command{
	Use:   "roll-initiative",
	Short: "Record an initiative roll, or roll on the server when no dice are given",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			if cmd.Flags().Changed("roll1") || cmd.Flags().Changed("roll2") {
				return c.RollInitiative(ctx, &v1alpha1.RollInitiativeRequest{
					ID:          sessionID,
					CombatantID: combatantID,
					Roll1:       roll1,
					Roll2:       roll2,
				})
			}
			return c.RollInitiativeDice(ctx, &v1alpha1.CombatantRequest{ID: sessionID, CombatantID: combatantID})
		})
	},
}

var damageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Apply damage to a combatant",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.ApplyDamage(ctx, &v1alpha1.AmountRequest{ID: sessionID, CombatantID: combatantID, Amount: amount})
		})
	},
}

var healCmd = &cobra.Command{
	Use:   "heal",
	Short: "Heal a combatant",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.ApplyHealing(ctx, &v1alpha1.AmountRequest{ID: sessionID, CombatantID: combatantID, Amount: amount})
		})
	},
}

func optionalInt(cmd *cobra.Command, flag string, value int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func init() {
	for _, cmd := range []*cobra.Command{addHeroCmd, addCreatureCmd} {
		requireSession(cmd)
		cmd.Flags().StringVar(&name, "name", "", "Combatant name (required)")
		cmd.Flags().StringVar(&entityID, "entity-id", "", "Linked character or monster ID")
		cmd.Flags().IntVar(&maxHP, "max-hp", 0, "Maximum hit points (required)")
		cmd.Flags().IntVar(&armorClass, "armor-class", 0, "Armor class")
		_ = cmd.MarkFlagRequired("name")   // nolint:errcheck // safe to ignore in init
		_ = cmd.MarkFlagRequired("max-hp") // nolint:errcheck // safe to ignore in init
	}
	addCreatureCmd.Flags().StringVar(&threat, "threat", string(entity.ThreatTroop), "Threat tier: boss, captain or troop")

	for _, cmd := range []*cobra.Command{rollInitiativeCmd, damageCmd, healCmd} {
		requireSession(cmd)
		cmd.Flags().StringVar(&combatantID, "combatant-id", "", "Combatant ID (required)")
		_ = cmd.MarkFlagRequired("combatant-id") // nolint:errcheck // safe to ignore in init
	}
	rollInitiativeCmd.Flags().IntVar(&roll1, "roll1", 0, "First initiative die")
	rollInitiativeCmd.Flags().IntVar(&roll2, "roll2", 0, "Second initiative die")
	damageCmd.Flags().IntVar(&amount, "amount", 0, "Damage amount")
	healCmd.Flags().IntVar(&amount, "amount", 0, "Healing amount")
}
