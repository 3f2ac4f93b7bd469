// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/microsoft/commerce-agents/ecommerce"
	"github.com/microsoft/commerce-agents/toolserver"
)

const toolServerVersion = "0.1.0"

func NewToolServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolserver",
		Short: "Serve the content tools over MCP on stdio",
		Long: `Serve the commerce content tools (catalog lookup, brand guidelines,
and the validation checks) as a Model Context Protocol server on
stdin/stdout. Point an MCP client or the pipeline's tool_server config
at this command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := toolserver.New(
				"ecommerce-content-tools",
				toolServerVersion,
				ecommerce.ContentTools(ecommerce.DemoCatalog()),
				slog.Default(),
			)
			if err != nil {
				return err
			}
			return srv.Serve()
		},
	}
}
