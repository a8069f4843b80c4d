// Package main is the entry point for the campaign combat server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaign-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-campaign-api",
	Short: "RPG campaign combat tracker",
	Long:  `RPG campaign API runs combat sessions for a tabletop campaign over gRPC, HTTP and a live websocket feed.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
