package studiolingo

import (
	"context"
	"sync"
	"time"

	"github.com/studiolingo/studiolingo/dom"
	"github.com/studiolingo/studiolingo/entitlement"
	"github.com/studiolingo/studiolingo/gateway"
)

// FeatureBatchTranslate is the entitlement feature name checked before a
// batch starts.
const FeatureBatchTranslate = "multiLangTranslate"

// Reporter receives batch progress. Calls are synchronous and sequential;
// implementations may call back into the controller (Pause, Stop) safely.
type Reporter interface {
	// Progress fires before and after each job. completed counts
	// terminal jobs; currentLabel is the language being worked, empty
	// once the batch is done iterating.
	Progress(completed, total int, currentLabel string)

	// JobResult fires once per job, as soon as it is terminal.
	JobResult(job *TranslationJob)

	// BatchDone fires once, after the last job or an abort.
	BatchDone(succeeded, failed int, elapsed time.Duration)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Progress(completed, total int, currentLabel string) {}
func (NopReporter) JobResult(job *TranslationJob)                      {}
func (NopReporter) BatchDone(succeeded, failed int, elapsed time.Duration) {}

var _ Reporter = NopReporter{}

// BatchState is a point-in-time view of a batch. Every target is in exactly
// one of Pending, Success, or Failed.
type BatchState struct {
	Targets   []string
	Pending   []*TranslationJob
	Success   []*TranslationJob
	Failed    []*TranslationJob
	IsPaused  bool
	IsStopped bool
	StartedAt time.Time
}

// AverageJobTime returns the mean elapsed time of terminal jobs, zero when
// none have finished.
func (s *BatchState) AverageJobTime() time.Duration {
	var total time.Duration
	n := 0
	for _, j := range s.Success {
		total += j.Elapsed
		n++
	}
	for _, j := range s.Failed {
		total += j.Elapsed
		n++
	}
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}

// ETA estimates remaining runtime as pending count times the average job
// time. Zero until at least one job has finished.
func (s *BatchState) ETA() time.Duration {
	return time.Duration(len(s.Pending)) * s.AverageJobTime()
}

// BatchController runs the pipeline over a set of languages, strictly one
// at a time. Pause, resume, and stop take effect at job boundaries; a job
// already underway always runs to its own terminal state.
type BatchController struct {
	page     dom.Page
	gen      gateway.Generator
	catalog  *Catalog
	gate     entitlement.Gate
	reporter Reporter
	timing   TimingConfig
	feature  string
	source   Metadata

	translator *Translator

	mu      sync.Mutex
	state   *BatchState
	paused  bool
	stopped bool
	running bool
}

// BatchOption configures a BatchController.
type BatchOption func(*BatchController)

// WithGate sets the entitlement gate. Default allows everything.
func WithGate(gate entitlement.Gate) BatchOption {
	return func(c *BatchController) { c.gate = gate }
}

// WithTiming overrides the timing profile.
func WithTiming(t TimingConfig) BatchOption {
	return func(c *BatchController) { c.timing = t }
}

// WithReporter sets the progress reporter. Default discards events.
func WithReporter(r Reporter) BatchOption {
	return func(c *BatchController) { c.reporter = r }
}

// WithSource sets the source metadata translated for every language. When
// set (and a generator is available), translations come from the gateway
// and are filled into the dialog; otherwise the host page's own translate
// action is used.
func WithSource(m Metadata) BatchOption {
	return func(c *BatchController) { c.source = m }
}

// WithBatchCatalog overrides the language catalog.
func WithBatchCatalog(cat *Catalog) BatchOption {
	return func(c *BatchController) { c.catalog = cat }
}

// WithFeature overrides the entitlement feature name checked at start.
func WithFeature(name string) BatchOption {
	return func(c *BatchController) { c.feature = name }
}

// WithBatchTranslator overrides the translator built from the generator,
// for callers that need custom caching or prompt behavior.
func WithBatchTranslator(t *Translator) BatchOption {
	return func(c *BatchController) { c.translator = t }
}

// NewBatchController wires a controller over a page driver and a text
// generator. gen may be nil when only the host page's native translate
// action will be used.
func NewBatchController(page dom.Page, gen gateway.Generator, opts ...BatchOption) *BatchController {
	c := &BatchController{
		page:     page,
		gen:      gen,
		catalog:  NewCatalog(),
		gate:     entitlement.NewStaticGate(true),
		reporter: NopReporter{},
		timing:   DefaultTimingConfig(),
		feature:  FeatureBatchTranslate,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.translator == nil && c.gen != nil {
		c.translator = NewTranslator(c.gen, WithCatalog(c.catalog))
	}
	return c
}

// Start runs the batch over targets and returns the final state. The gate
// is consulted exactly once, before any job. On an abort (a job error that
// must stop the whole batch) the state is returned alongside a
// BatchAbortedError; never-attempted targets remain pending. Only one run
// may be in flight per controller; a concurrent Start fails with
// BatchRunningError.
func (c *BatchController) Start(ctx context.Context, targets []string) (*BatchState, error) {
	if len(targets) == 0 {
		return nil, &EmptyBatchError{}
	}
	decision, err := c.gate.IsAllowed(ctx, c.feature)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &EntitlementDeniedError{Feature: c.feature, Status: decision.Status, Message: decision.Message}
	}

	state := &BatchState{
		Targets:   append([]string(nil), targets...),
		StartedAt: time.Now(),
	}
	for _, code := range targets {
		state.Pending = append(state.Pending, newTranslationJob(c.catalog.Get(code)))
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil, &BatchRunningError{}
	}
	c.state = state
	c.paused = false
	c.stopped = false
	c.running = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	orch := NewOrchestrator(c.page, c.catalog, c.translator, c.source, c.timing)
	total := len(targets)

	for i := 0; i < total; i++ {
		if stopped, err := c.waitIfPaused(ctx); err != nil {
			c.finish(state)
			return c.snapshot(), err
		} else if stopped {
			break
		}

		c.mu.Lock()
		job := state.Pending[0]
		c.mu.Unlock()

		c.reporter.Progress(i, total, job.Label())
		done := orch.Run(ctx, job.Code)

		c.mu.Lock()
		state.Pending = state.Pending[1:]
		if done.Outcome == JobSuccess {
			state.Success = append(state.Success, done)
		} else {
			state.Failed = append(state.Failed, done)
		}
		c.mu.Unlock()

		c.reporter.JobResult(done)
		c.reporter.Progress(i+1, total, "")

		if done.Outcome == JobFailed && gateway.ShouldStopBatch(done.Err) {
			c.finish(state)
			return c.snapshot(), &BatchAbortedError{Code: done.Code, Cause: done.Err}
		}

		if i < total-1 {
			if err := sleep(ctx, c.timing.InterJobDelay); err != nil {
				c.finish(state)
				return c.snapshot(), err
			}
		}
	}

	c.finish(state)
	return c.snapshot(), nil
}

// waitIfPaused blocks while the batch is paused, polling for resume or
// stop. Returns true once the batch is stopped.
func (c *BatchController) waitIfPaused(ctx context.Context) (bool, error) {
	for {
		c.mu.Lock()
		paused, stopped := c.paused, c.stopped
		if c.state != nil {
			c.state.IsPaused = paused
			c.state.IsStopped = stopped
		}
		c.mu.Unlock()
		if stopped {
			return true, nil
		}
		if !paused {
			return false, nil
		}
		if err := sleep(ctx, c.timing.PauseCheckInterval); err != nil {
			return false, err
		}
	}
}

func (c *BatchController) finish(state *BatchState) {
	c.mu.Lock()
	state.IsPaused = false
	state.IsStopped = c.stopped
	succeeded, failed := len(state.Success), len(state.Failed)
	elapsed := time.Since(state.StartedAt)
	c.mu.Unlock()
	c.reporter.BatchDone(succeeded, failed, elapsed)
}

// Pause requests a pause at the next job boundary. The job underway keeps
// running.
func (c *BatchController) Pause() {
	c.mu.Lock()
	c.paused = true
	if c.state != nil {
		c.state.IsPaused = true
	}
	c.mu.Unlock()
}

// Resume clears a pause.
func (c *BatchController) Resume() {
	c.mu.Lock()
	c.paused = false
	if c.state != nil {
		c.state.IsPaused = false
	}
	c.mu.Unlock()
}

// Stop requests an orderly stop at the next job boundary. Finished results
// are retained; remaining targets stay pending.
func (c *BatchController) Stop() {
	c.mu.Lock()
	c.stopped = true
	if c.state != nil {
		c.state.IsStopped = true
	}
	c.mu.Unlock()
}

// State returns a copy of the current batch state, nil before any run.
func (c *BatchController) State() *BatchState {
	return c.snapshot()
}

func (c *BatchController) snapshot() *BatchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return nil
	}
	s := *c.state
	s.Targets = append([]string(nil), c.state.Targets...)
	s.Pending = append([]*TranslationJob(nil), c.state.Pending...)
	s.Success = append([]*TranslationJob(nil), c.state.Success...)
	s.Failed = append([]*TranslationJob(nil), c.state.Failed...)
	return &s
}

// RetryFailed starts a fresh run over exactly the languages that failed in
// the previous run. The entitlement gate is consulted again, once.
func (c *BatchController) RetryFailed(ctx context.Context) (*BatchState, error) {
	c.mu.Lock()
	var codes []string
	if c.state != nil {
		for _, j := range c.state.Failed {
			codes = append(codes, j.Code)
		}
	}
	c.mu.Unlock()
	if len(codes) == 0 {
		return nil, &EmptyBatchError{}
	}
	return c.Start(ctx, codes)
}
