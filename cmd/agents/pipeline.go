// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/microsoft/commerce-agents/agentic"
	"github.com/microsoft/commerce-agents/ecommerce"
	"github.com/microsoft/commerce-agents/mcptool"
	"github.com/microsoft/commerce-agents/pipeline"
)

func NewPipelineCmd() *cobra.Command {
	var (
		configPath string
		product    string
	)

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Run the research, copywriting, and quality control pipeline",
		Example: `  # Create marketing content for the wireless mouse
  agents pipeline --product PROD001

  # Use an external MCP tool server configured in pipeline.yaml
  agents pipeline --config pipeline.yaml --product PROD002`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := slog.Default()

			cfg := pipeline.DefaultConfig()
			if configPath != "" {
				loaded, err := pipeline.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			client, err := newChatClient(cfg.Model)
			if err != nil {
				return err
			}

			// Tools come from an external MCP server when one is
			// configured, otherwise run in process.
			var tools []agentic.Tool
			if cfg.ToolServer.Command != "" {
				mcpClient, err := mcptool.Connect(ctx, cfg.ToolServer.Command, cfg.ToolServer.Arguments, logger)
				if err != nil {
					return fmt.Errorf("connect to tool server: %w", err)
				}
				defer mcpClient.Close()

				tools, err = mcpClient.Tools(ctx)
				if err != nil {
					return fmt.Errorf("list tools: %w", err)
				}
			} else {
				tools = ecommerce.ContentTools(ecommerce.DemoCatalog())
			}

			p, err := pipeline.New(client, tools, cfg, logger)
			if err != nil {
				return err
			}

			task := fmt.Sprintf("Create marketing content for product %s", product)
			result, err := p.Run(ctx, task)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== CONTENT BRIEF ===")
			fmt.Fprintln(out, result.Brief)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "=== MARKETING CONTENT ===")
			fmt.Fprintln(out, result.Content)
			fmt.Fprintln(out)
			fmt.Fprintln(out, result.Report)
			if result.Revised {
				fmt.Fprintln(out, "\n(content was revised once after quality review)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a pipeline YAML config file")
	cmd.Flags().StringVar(&product, "product", "PROD001", "catalog product ID")
	return cmd
}
