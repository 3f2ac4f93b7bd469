// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/microsoft/commerce-agents/agentic"
	"github.com/microsoft/commerce-agents/ecommerce"
)

const campaignInstructions = "You are an e-shop marketing copywriter. Write short promotional campaign texts."

func NewCampaignCmd() *cobra.Command {
	var (
		product string
		model   string
	)

	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Write a promotional campaign text for a store product",
		Example: `  # Campaign for the noise cancelling headphones
  agents campaign --product 202`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newChatClient(model)
			if err != nil {
				return err
			}

			agent := agentic.NewAgent(client,
				agentic.WithName("campaign-writer"),
				agentic.WithInstructions(campaignInstructions),
				agentic.WithTools(ecommerce.CampaignTools(ecommerce.DemoStore())...),
				agentic.WithAgentMiddleware(agentic.LoggingMiddleware(slog.Default())),
				agentic.WithChatMiddleware(agentic.RetryMiddleware(3)),
			)

			task := fmt.Sprintf("Write a campaign text for product %s.", product)
			resp, err := agent.Run(cmd.Context(), []agentic.Message{agentic.NewUserMessage(task)})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Text())
			if resp.Usage.TotalTokens > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n[tokens: %d in, %d out]\n",
					resp.Usage.InputTokens, resp.Usage.OutputTokens)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "202", "product ID to promote")
	cmd.Flags().StringVar(&model, "model", "gpt-4o", "model to use")
	return cmd
}
