package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	combatclient "github.com/KirkDiggler/rpg-campaign-api/internal/clients/combat"
	entity "github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/handlers/combat/v1alpha1"
)

var (
	sessionID   string
	name        string
	description string
	status      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a combat session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.CreateCombat(ctx, &v1alpha1.CreateCombatRequest{Name: name, Description: description})
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List combat sessions, most recently updated first",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.ListCombats(ctx, &v1alpha1.ListCombatsRequest{Status: entity.Status(status)})
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a combat session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.GetCombat(ctx, &v1alpha1.SessionRequest{ID: sessionID})
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a combat session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.DeleteCombat(ctx, &v1alpha1.SessionRequest{ID: sessionID})
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a combat session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			return c.GetSummary(ctx, &v1alpha1.SessionRequest{ID: sessionID})
		})
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active session, or select one with --session-id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
			if cmd.Flags().Changed("session-id") {
				return c.SetActiveCombat(ctx, &v1alpha1.SessionRequest{ID: sessionID})
			}
			return c.GetActiveCombat(ctx, &v1alpha1.EmptyRequest{})
		})
	},
}

type sessionCall func(c combatclient.Client, ctx context.Context, req *v1alpha1.SessionRequest) (*v1alpha1.SessionResponse, error)

// sessionActionCmds builds one command per call that only needs a session ID
func sessionActionCmds() []*cobra.Command {
	actions := []struct {
		use   string
		short string
		call  sessionCall
	}{
		{"start", "Start combat", combatclient.Client.StartCombat},
		{"pause", "Pause combat", combatclient.Client.PauseCombat},
		{"resume", "Resume combat", combatclient.Client.ResumeCombat},
		{"end", "End combat", combatclient.Client.EndCombat},
		{"next-turn", "Advance to the next turn", combatclient.Client.NextTurn},
		{"previous-turn", "Step back one turn", combatclient.Client.PreviousTurn},
		{"sort", "Sort the roster by initiative", combatclient.Client.SortByInitiative},
		{"tick-conditions", "Tick condition durations down one round", combatclient.Client.TickConditions},
	}

	cmds := make([]*cobra.Command, 0, len(actions))
	for _, action := range actions {
		call := action.call
		cmd := &cobra.Command{
			Use:   action.use,
			Short: action.short,
			RunE: func(_ *cobra.Command, _ []string) error {
				return withClient(func(ctx context.Context, c combatclient.Client) (any, error) {
					return call(c, ctx, &v1alpha1.SessionRequest{ID: sessionID})
				})
			},
		}
		requireSession(cmd)
		cmds = append(cmds, cmd)
	}
	return cmds
}

func requireSession(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Combat session ID (required)")
	_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

func init() {
	createCmd.Flags().StringVar(&name, "name", "", "Session name (required)")
	createCmd.Flags().StringVar(&description, "description", "", "Session description")
	_ = createCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	listCmd.Flags().StringVar(&status, "status", "", fmt.Sprintf("Filter by status %v", entity.Statuses))

	requireSession(getCmd)
	requireSession(deleteCmd)
	requireSession(summaryCmd)

	activeCmd.Flags().StringVar(&sessionID, "session-id", "", "Session to make active; empty clears it")
}
