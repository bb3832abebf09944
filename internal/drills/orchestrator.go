package drills

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/drillwise/drillwise/internal/checklist"
	"github.com/drillwise/drillwise/internal/drillplan"
	"github.com/drillwise/drillwise/internal/llm"
)

// GenerateInput carries everything a generation call needs.
type GenerateInput struct {
	Mode           drillplan.Mode
	NicheContext   string
	Struggle       string
	Objective      string
	SignalsSummary string
	ChunkSize      int
	Setup          *checklist.Setup
}

// Result is a validated drill set plus any content-quality warnings that
// were accepted rather than fixed.
type Result struct {
	Items    []DrillItem
	Warnings []string
}

// Orchestrator runs the generate-validate-repair pipeline. Structural
// failures are hard errors; content-quality failures get exactly one
// repair attempt per item, and an item whose repair also fails ships
// as-is with a logged warning.
type Orchestrator struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// NewOrchestrator builds an orchestrator around a provider.
func NewOrchestrator(provider llm.Provider, cfg Config, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{provider: provider, cfg: cfg, logger: logger}
}

// Generate produces a validated drill set for the given input.
func (o *Orchestrator) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	genCtx := llm.WithPurpose(ctx, "drill-gen")
	resp, err := o.provider.Generate(genCtx, llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(input),
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate drills: %w", err)
	}

	items, err := parseDrillSet(resp.Text)
	if err != nil {
		return nil, err
	}

	result := &Result{Items: items}
	for i := range result.Items {
		o.ensureQuality(ctx, &result.Items[i], input, result)
	}

	for i := range result.Items {
		Normalize(&result.Items[i])
	}
	return result, nil
}

// ensureQuality validates one item's content and runs the bounded repair
// loop. State is explicit: attempt counts repair calls made, lastReason
// holds the violation being repaired.
func (o *Orchestrator) ensureQuality(ctx context.Context, item *DrillItem, input GenerateInput, result *Result) {
	violation := ValidateScenario(item, input.Mode)
	if violation == nil {
		return
	}

	attempt := 0
	lastReason := violation.Reason
	for attempt < 1 {
		attempt++
		repaired, err := o.repair(ctx, item, lastReason, input)
		if err != nil {
			o.logger.Warn("drill repair failed, keeping original",
				"reason", lastReason, "error", err)
			result.Warnings = append(result.Warnings, lastReason)
			return
		}

		if v := ValidateScenario(repaired, input.Mode); v != nil {
			lastReason = v.Reason
			continue
		}
		*item = *repaired
		return
	}

	o.logger.Warn("repaired drill still below quality bar, keeping it",
		"reason", lastReason)
	result.Warnings = append(result.Warnings, lastReason)
}

func (o *Orchestrator) repair(ctx context.Context, item *DrillItem, reason string, input GenerateInput) (*DrillItem, error) {
	repairCtx := llm.WithPurpose(ctx, "drill-repair")
	resp, err := o.provider.Generate(repairCtx, llm.Request{
		System:      repairSystemPrompt,
		User:        buildRepairMessage(item, reason, input),
		MaxTokens:   o.cfg.RepairMaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}
	return parseDrillItem(resp.Text)
}
