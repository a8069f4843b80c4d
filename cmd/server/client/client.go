// Package client provides commands that drive a running combat server over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	combatclient "github.com/KirkDiggler/rpg-campaign-api/internal/clients/combat"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// dial and output are replaced in tests
	dial = func() (combatclient.Client, error) {
		return combatclient.New(&combatclient.Config{
			Target:  serverAddr,
			Timeout: timeout,
		})
	}
	output io.Writer = os.Stdout
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the combat service",
	Long:  `Client commands call a running combat server and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", combatclient.DefaultTimeout, "Request timeout")

	// Session commands
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(summaryCmd)
	ClientCmd.AddCommand(activeCmd)

	// Lifecycle and turn commands
	for _, cmd := range sessionActionCmds() {
		ClientCmd.AddCommand(cmd)
	}

	// Roster commands
	ClientCmd.AddCommand(addHeroCmd)
	ClientCmd.AddCommand(addCreatureCmd)
	ClientCmd.AddCommand(rollInitiativeCmd)
	ClientCmd.AddCommand(damageCmd)
	ClientCmd.AddCommand(healCmd)
}

// withClient dials the server, runs fn with a bounded context and closes
// the connection afterwards
func withClient(fn func(ctx context.Context, c combatclient.Client) (any, error)) error {
	c, err := dial()
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, c)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func printJSON(v any) error {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
