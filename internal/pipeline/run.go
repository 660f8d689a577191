// Package pipeline provides the high-level orchestration for the summarization process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/polysum/internal/observability"
	"github.com/jonathan/polysum/internal/parsing"
	"github.com/jonathan/polysum/internal/pipeline/steps"
	"github.com/jonathan/polysum/internal/ranking"
	"github.com/jonathan/polysum/internal/refining"
	"github.com/jonathan/polysum/internal/reviewing"
	"github.com/jonathan/polysum/internal/rewriting"
	"github.com/jonathan/polysum/internal/types"
	"github.com/jonathan/polysum/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	Verbose    bool
	Out        io.Writer // verbose output; defaults to os.Stdout
	RunID      string
	OnProgress ProgressCallback
}

// Result holds the final summary together with every intermediate agent result
type Result struct {
	Summary        string                     `json:"summary"`
	Document       types.NormalizedDocument   `json:"document"`
	Reasoning      types.ReasoningResult      `json:"reasoning"`
	Verification   types.VerificationResult   `json:"verification"`
	Simplification types.SimplificationResult `json:"simplification"`
	Critique       types.CritiqueResult       `json:"critique"`
}

// run tracks completed steps and serializes progress callbacks for one execution
type run struct {
	opts      Options
	printer   *observability.Printer
	mu        sync.Mutex
	completed map[string]bool
}

// begin checks the step's dependencies against the steps completed so far
func (r *run) begin(step string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return steps.ValidateDependencies(r.completed, step)
}

// finish marks the step completed and emits its progress event
func (r *run) finish(step, message string, content any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completed[step] = true
	if r.opts.Verbose {
		_, _ = fmt.Fprintf(r.printer.Writer(), "[VERBOSE] %s: %s\n", step, message)
	}
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.StepRegistry[step].Category,
			Message:  message,
			RunID:    r.opts.RunID,
			Content:  content,
		})
	}
}

// verbose runs fn with the printer while holding the lock, so concurrent boxes never interleave
func (r *run) verbose(fn func(p *observability.Printer)) {
	if !r.opts.Verbose {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.printer)
}

// Run executes the summarization pipeline over text.
// Steps run in the stages derived from the step registry; steps sharing a stage
// (verification, simplification and critique) run concurrently.
func Run(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline cancelled: %w", err)
	}

	stages, err := steps.ExecutionOrder()
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	r := &run{
		opts:      opts,
		printer:   observability.NewPrinter(out),
		completed: make(map[string]bool, len(steps.StepRegistry)),
	}
	res := &Result{}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline cancelled: %w", err)
		}

		if len(stage) == 1 {
			if err := r.step(stage[0], text, res); err != nil {
				return nil, err
			}
			continue
		}

		// Steps in one stage write disjoint Result fields
		g, gCtx := errgroup.WithContext(ctx)
		for _, name := range stage {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				return r.step(name, text, res)
			})
		}
		if err := g.Wait(); err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("pipeline cancelled: %w", err)
			}
			return nil, err
		}
	}

	return res, nil
}

// step runs one registered step after checking its dependencies
func (r *run) step(name, text string, res *Result) error {
	if err := r.begin(name); err != nil {
		return err
	}

	switch name {
	case steps.StepNormalize:
		res.Document = parsing.Normalize(text)
		r.verbose(func(p *observability.Printer) { p.PrintDocument(&res.Document) })
		r.finish(name,
			fmt.Sprintf("Normalized input into %d sentences (%d words)", len(res.Document.Sentences), res.Document.WordCount),
			nil)

	case steps.StepReason:
		res.Reasoning = ranking.Extract(res.Document)
		r.verbose(func(p *observability.Printer) { p.PrintReasoning(&res.Reasoning) })
		r.finish(name, fmt.Sprintf("Selected %d key sentences", res.Reasoning.KeyPoints), res.Reasoning)

	case steps.StepVerify:
		result := validation.Verify(res.Document, res.Reasoning)
		res.Verification = result
		r.verbose(func(p *observability.Printer) { p.PrintVerification(&result) })
		r.finish(name, fmt.Sprintf("Coverage %d%%, verified: %t", result.Coverage, result.Verified), result)

	case steps.StepSimplify:
		result := rewriting.Simplify(res.Reasoning)
		res.Simplification = result
		r.verbose(func(p *observability.Printer) { p.PrintSimplification(&result) })
		r.finish(name, fmt.Sprintf("Average word length %s", result.AvgWordLength), result)

	case steps.StepCritique:
		result := reviewing.Critique(res.Document, res.Reasoning)
		res.Critique = result
		r.verbose(func(p *observability.Printer) { p.PrintCritique(&result) })
		r.finish(name, fmt.Sprintf("Quality %s with %d issues", result.Quality, len(result.Issues)), result)

	case steps.StepRefine:
		res.Summary = refining.Refine(res.Reasoning, res.Verification, res.Simplification, res.Critique)
		r.finish(name, "Refined final summary", res.Summary)

	default:
		return fmt.Errorf("no handler for step %s", name)
	}
	return nil
}
