// Copyright (c) Microsoft. All rights reserved.

// Package pipeline runs the three-stage content creation workflow:
// research produces a content brief, copywriting turns the brief into a
// marketing package, and quality control validates the result. All three
// agents share one tool registry; each stage runs in its own
// conversation and receives the prior stage's output as user input.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microsoft/commerce-agents/agentic"
)

// Decision is the quality control verdict extracted from the report.
type Decision string

const (
	DecisionApproved      Decision = "APPROVED"
	DecisionNeedsRevision Decision = "NEEDS REVISION"
	DecisionRejected      Decision = "REJECTED"
	DecisionUnknown       Decision = ""
)

// Result carries the artifacts of a completed pipeline run.
type Result struct {
	Brief    string
	Content  string
	Report   string
	Decision Decision

	// Revised is true when quality control sent the content back and the
	// copywriting stage ran a second time.
	Revised bool
}

// Pipeline coordinates the three content agents.
type Pipeline struct {
	logger *slog.Logger

	research   *agentic.Agent
	copywriter *agentic.Agent
	qc         *agentic.Agent
}

// New builds the pipeline. All agents talk to the same chat backend and
// share a registry holding the given tools.
func New(client agentic.ChatClient, tools []agentic.Tool, cfg *Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	registry := agentic.NewRegistry()
	if err := registry.Register(tools...); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	loopCfg := agentic.DefaultLoopConfig()
	loopCfg.MaxIterations = cfg.MaxIterations

	temp := cfg.Temperature
	defaults := &agentic.ChatOptions{
		ModelID:     cfg.Model,
		Temperature: &temp,
	}

	newStageAgent := func(name, instructions string) *agentic.Agent {
		return agentic.NewAgent(client,
			agentic.WithName(name),
			agentic.WithInstructions(instructions),
			agentic.WithRegistry(registry),
			agentic.WithDefaultOptions(defaults),
			agentic.WithLoopConfig(loopCfg),
			agentic.WithAgentMiddleware(agentic.LoggingMiddleware(logger)),
		)
	}

	return &Pipeline{
		logger:     logger,
		research:   newStageAgent("ProductIntelligenceAgent", researchInstructions),
		copywriter: newStageAgent("ContentCreatorAgent", copywriterInstructions),
		qc:         newStageAgent("QualityControlAgent", qualityControlInstructions),
	}, nil
}

// Run executes the workflow for a task such as "Create marketing content
// for product PROD001". When quality control asks for changes, the
// copywriting stage gets exactly one revision pass before the final
// verdict stands.
func (p *Pipeline) Run(ctx context.Context, task string) (*Result, error) {
	p.logger.InfoContext(ctx, "pipeline started", "task", task)

	brief, err := p.runStage(ctx, p.research, task)
	if err != nil {
		return nil, fmt.Errorf("research stage: %w", err)
	}

	content, err := p.runStage(ctx, p.copywriter, "Content Brief:\n\n"+brief)
	if err != nil {
		return nil, fmt.Errorf("copywriting stage: %w", err)
	}

	report, err := p.reviewContent(ctx, brief, content)
	if err != nil {
		return nil, fmt.Errorf("quality control stage: %w", err)
	}

	result := &Result{
		Brief:    brief,
		Content:  content,
		Report:   report,
		Decision: ParseDecision(report),
	}

	if result.Decision == DecisionNeedsRevision || result.Decision == DecisionRejected {
		p.logger.InfoContext(ctx, "content sent back for revision", "decision", string(result.Decision))

		revised, err := p.runStage(ctx, p.copywriter, fmt.Sprintf(
			"Content Brief:\n\n%s\n\nYour previous draft:\n\n%s\n\nQuality control feedback:\n\n%s\n\nRevise the content to address the feedback.",
			brief, content, report))
		if err != nil {
			return nil, fmt.Errorf("revision stage: %w", err)
		}

		report, err = p.reviewContent(ctx, brief, revised)
		if err != nil {
			return nil, fmt.Errorf("quality control stage: %w", err)
		}

		result.Content = revised
		result.Report = report
		result.Decision = ParseDecision(report)
		result.Revised = true
	}

	p.logger.InfoContext(ctx, "pipeline finished", "decision", string(result.Decision), "revised", result.Revised)
	return result, nil
}

// runStage runs one agent in a fresh conversation and returns its final text.
func (p *Pipeline) runStage(ctx context.Context, agent *agentic.Agent, input string) (string, error) {
	p.logger.DebugContext(ctx, "stage started", "agent", agent.Name())

	resp, err := agent.Run(ctx, []agentic.Message{agentic.NewUserMessage(input)})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("agent %s produced no text output", agent.Name())
	}
	return text, nil
}

func (p *Pipeline) reviewContent(ctx context.Context, brief, content string) (string, error) {
	return p.runStage(ctx, p.qc, fmt.Sprintf(
		"Content Brief:\n\n%s\n\nMarketing Content:\n\n%s", brief, content))
}

// ParseDecision extracts the verdict from a quality validation report.
// The report format puts the verdict on a "DECISION:" line.
func ParseDecision(report string) Decision {
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "DECISION:")
		if !ok {
			continue
		}
		rest = strings.ToUpper(strings.TrimSpace(rest))
		switch {
		case strings.Contains(rest, string(DecisionNeedsRevision)):
			return DecisionNeedsRevision
		case strings.Contains(rest, string(DecisionRejected)):
			return DecisionRejected
		case strings.Contains(rest, string(DecisionApproved)):
			return DecisionApproved
		}
	}
	return DecisionUnknown
}
