// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "agents",
		Short:         "Commerce agent workflows backed by LLM tool calling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignored if missing).
			_ = godotenv.Load()

			level := slog.LevelInfo
			if debug || os.Getenv("DEBUG") != "" {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		NewCampaignCmd(),
		NewPipelineCmd(),
		NewToolServerCmd(),
	)
	return cmd
}
