package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
	"github.com/studiolingo/studiolingo/dom"
	"github.com/studiolingo/studiolingo/entitlement"
	"github.com/studiolingo/studiolingo/gateway"
)

var (
	batchTargets  []string
	batchPageFile string
	batchRehearse bool
	batchTitle    string
	batchDesc     string
	batchTrial    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rehearse a batch translation run against a page snapshot",
	Long: `Runs the full batch pipeline over the subscribed (or given)
languages against a scripted copy of a saved page snapshot. Nothing is
sent to the real host page; --rehearse replays page reactions in memory
and, without OPENAI_API_KEY, substitutes echoed translations.

Driving a live page requires embedding the library with a real page
driver; the CLI only rehearses.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchTargets, "to", nil, "target language codes (default: subscription minus protected)")
	batchCmd.Flags().StringVar(&batchPageFile, "page", "", "saved HTML snapshot to rehearse against (required)")
	batchCmd.Flags().BoolVar(&batchRehearse, "rehearse", false, "confirm this is a rehearsal run")
	batchCmd.Flags().StringVar(&batchTitle, "title", "", "source title")
	batchCmd.Flags().StringVar(&batchDesc, "description", "", "source description")
	batchCmd.Flags().BoolVar(&batchTrial, "trial", false, "gate the run behind the local trial")
	rootCmd.AddCommand(batchCmd)
}

// progressPrinter reports batch events to stdout.
type progressPrinter struct{}

func (progressPrinter) Progress(completed, total int, currentLabel string) {
	if currentLabel != "" {
		fmt.Printf("[%d/%d] %s...\n", completed+1, total, currentLabel)
	}
}

func (progressPrinter) JobResult(job *studiolingo.TranslationJob) {
	switch job.Outcome {
	case studiolingo.JobSuccess:
		fmt.Printf("  done in %s\n", job.Elapsed.Round(time.Millisecond))
	default:
		fmt.Printf("  failed: %s\n", job.ErrorMessage())
	}
	for _, w := range job.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}

func (progressPrinter) BatchDone(succeeded, failed int, elapsed time.Duration) {
	fmt.Printf("batch finished: %d succeeded, %d failed, %s elapsed\n",
		succeeded, failed, elapsed.Round(time.Millisecond))
}

func runBatch(cmd *cobra.Command, args []string) error {
	if !batchRehearse {
		return fmt.Errorf("only rehearsal runs are supported; pass --rehearse with --page")
	}
	if batchPageFile == "" {
		return fmt.Errorf("--page is required")
	}
	data, err := os.ReadFile(batchPageFile) // #nosec G304 -- path is caller-chosen by design
	if err != nil {
		return err
	}
	page, err := dom.NewFakePage(string(data))
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	store, state, err := loadStore()
	if err != nil {
		return err
	}
	cat := studiolingo.NewCatalog()
	sub := state.ApplyTo(cat)

	targets := batchTargets
	if len(targets) == 0 {
		for _, code := range sub {
			if !studiolingo.IsProtected(code) {
				targets = append(targets, code)
			}
		}
	}

	var gen gateway.Generator
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		gen = gateway.NewOpenAIGenerator(gateway.OpenAIConfig{APIKey: key})
	} else {
		gen = &gateway.MockGenerator{Response: gateway.EchoTranslation(batchTitle, batchDesc)}
	}

	gate := entitlement.Gate(entitlement.NewStaticGate(true))
	if batchTrial {
		trial := entitlement.NewLocalTrialGate(state.TrialStartedAt)
		if state.TrialStartedAt.IsZero() {
			state.TrialStartedAt = time.Now()
			if err := store.Save(state); err != nil {
				return err
			}
		}
		gate = trial
	}

	// Rehearsals use tight timings; nothing actually renders.
	timing := studiolingo.TimingConfig{
		PollInterval:       time.Millisecond,
		LocateTimeout:      20 * time.Millisecond,
		SettleDelay:        time.Millisecond,
		PickerOpenDelay:    time.Millisecond,
		RowAppearDelay:     time.Millisecond,
		DialogOpenDelay:    time.Millisecond,
		HoverRevealDelay:   time.Millisecond,
		CompletionTimeout:  20 * time.Millisecond,
		InterJobDelay:      time.Millisecond,
		PauseCheckInterval: time.Millisecond,
	}

	ctrl := studiolingo.NewBatchController(page, gen,
		studiolingo.WithBatchCatalog(cat),
		studiolingo.WithGate(gate),
		studiolingo.WithTiming(timing),
		studiolingo.WithReporter(progressPrinter{}),
		studiolingo.WithSource(studiolingo.Metadata{Title: batchTitle, Description: batchDesc}),
	)

	final, err := ctrl.Start(context.Background(), targets)
	if err != nil {
		var denied *studiolingo.EntitlementDeniedError
		if errors.As(err, &denied) {
			return fmt.Errorf("%s", denied.Message)
		}
		var aborted *studiolingo.BatchAbortedError
		if errors.As(err, &aborted) {
			printError("batch aborted", aborted.Cause)
		} else {
			return err
		}
	}
	if final != nil && len(final.Failed) > 0 {
		var codes []string
		for _, j := range final.Failed {
			codes = append(codes, j.Code)
		}
		fmt.Printf("failed languages: %s\n", strings.Join(codes, ", "))
	}
	return nil
}
