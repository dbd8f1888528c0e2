package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/config"
)

// PingCmd probes the upstream maintenance API. Exists for development
// and deploy smoke checks only.
var PingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the upstream API is reachable.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		client := &http.Client{Timeout: 5 * time.Second}

		resp, err := client.Get(cfg.APIURL + "/api/v1/cities?active_only=true")
		if err != nil {
			return fmt.Errorf("ping upstream: %w", err)
		}
		defer resp.Body.Close()

		fmt.Printf("upstream %s responded with %d\n", cfg.APIURL, resp.StatusCode)
		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "mxgateway",
		Short: "Maintenance operations API gateway",
		// The bare binary starts the server from main; subcommands are
		// opt-in, so the root command itself does nothing.
		Run: func(_ *cobra.Command, _ []string) {},
	}
	rootCmd.AddCommand(PingCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
