package studiolingo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studiolingo/studiolingo/dom"
	"github.com/studiolingo/studiolingo/gateway"
)

// Step names a stage of the per-language pipeline, for error reporting.
type Step string

const (
	StepAddLanguage     Step = "add_language"
	StepSelectLanguage  Step = "select_language"
	StepOpenEditor      Step = "open_editor"
	StepTranslate       Step = "translate"
	StepAwaitCompletion Step = "await_completion"
	StepPublish         Step = "publish"
)

// JobOutcome is the terminal (or pending) state of a job.
type JobOutcome string

const (
	JobPending JobOutcome = "pending"
	JobSuccess JobOutcome = "success"
	JobFailed  JobOutcome = "failed"
)

// TranslationJob tracks one language through the pipeline. Once Outcome
// leaves JobPending it never changes; later steps can only append warnings.
type TranslationJob struct {
	ID          string
	Code        string
	DisplayName string
	Flag        string

	StartedAt time.Time
	Elapsed   time.Duration

	Outcome  JobOutcome
	Err      error
	Warnings []string
}

func newTranslationJob(entry LanguageEntry) *TranslationJob {
	return &TranslationJob{
		ID:          uuid.NewString(),
		Code:        entry.Code,
		DisplayName: entry.DisplayName,
		Flag:        entry.Flag,
		Outcome:     JobPending,
	}
}

// Label returns the job's language as shown to the user.
func (j *TranslationJob) Label() string {
	return j.Flag + " " + j.DisplayName
}

// ErrorMessage returns the failure text, empty when the job did not fail.
func (j *TranslationJob) ErrorMessage() string {
	if j.Err == nil {
		return ""
	}
	return j.Err.Error()
}

// ErrorKind returns the gateway error kind behind a failure, or the failed
// step's name, or empty for a successful job.
func (j *TranslationJob) ErrorKind() string {
	if j.Err == nil {
		return ""
	}
	if gerr, ok := gateway.AsError(j.Err); ok {
		return string(gerr.Kind)
	}
	var serr *StepError
	if errors.As(j.Err, &serr) {
		return string(serr.Step)
	}
	return "error"
}

func (j *TranslationJob) fail(step Step, message string, cause error) {
	if j.Outcome != JobPending {
		return
	}
	j.Outcome = JobFailed
	j.Err = &StepError{Step: step, Message: message, Cause: cause}
}

func (j *TranslationJob) succeed() {
	if j.Outcome != JobPending {
		return
	}
	j.Outcome = JobSuccess
}

func (j *TranslationJob) warn(format string, args ...any) {
	j.Warnings = append(j.Warnings, fmt.Sprintf(format, args...))
}

// Orchestrator runs the per-language pipeline against a host page: add the
// language, open its metadata editor, obtain translated metadata, fill it
// in, and publish. Structural failures before the metadata is applied fail
// the job; completion and publish hiccups after that point only warn, since
// the work may well have landed.
type Orchestrator struct {
	page       dom.Page
	locator    *dom.Locator
	catalog    *Catalog
	translator *Translator
	source     Metadata
	timing     TimingConfig
}

// NewOrchestrator wires an orchestrator. translator may be nil when the
// host page's own translate action is to be used exclusively.
func NewOrchestrator(page dom.Page, catalog *Catalog, translator *Translator, source Metadata, timing TimingConfig) *Orchestrator {
	return &Orchestrator{
		page:       page,
		locator:    dom.NewLocator(page, timing.PollInterval),
		catalog:    catalog,
		translator: translator,
		source:     source,
		timing:     timing,
	}
}

// Run drives one language through the pipeline and returns its job. The
// returned job is always terminal; context cancellation surfaces as a
// failed job whose error wraps ctx.Err().
func (o *Orchestrator) Run(ctx context.Context, code string) *TranslationJob {
	job := newTranslationJob(o.catalog.Get(code))
	job.StartedAt = time.Now()
	defer func() { job.Elapsed = time.Since(job.StartedAt) }()

	variations := o.catalog.Variations(code)

	if !o.addLanguage(ctx, job, variations) {
		return job
	}
	if !o.openEditor(ctx, job, variations) {
		return job
	}
	if !o.translate(ctx, job) {
		return job
	}
	o.awaitCompletion(ctx, job)
	o.publish(ctx, job)
	job.succeed()
	return job
}

// addLanguage clicks the add-language control and picks the language. When
// the control is missing the language may already be listed, so the row
// table is checked before giving up.
func (o *Orchestrator) addLanguage(ctx context.Context, job *TranslationJob, variations []string) bool {
	add, err := o.locator.AddLanguageControl(ctx, o.timing.LocateTimeout)
	if err != nil {
		job.fail(StepAddLanguage, "locating add-language control", err)
		return false
	}
	if add == nil {
		if err := sleep(ctx, o.timing.SettleDelay); err != nil {
			job.fail(StepAddLanguage, "cancelled", err)
			return false
		}
		row, err := o.locator.LanguageRow(ctx, o.timing.LocateTimeout, job.Code, variations)
		if err != nil {
			job.fail(StepAddLanguage, "locating existing language row", err)
			return false
		}
		if row == nil {
			job.fail(StepAddLanguage, "add-language control not found and language is not already listed", nil)
			return false
		}
		// Already listed, skip straight to the editor.
		return true
	}

	if err := o.page.Click(ctx, add.Target); err != nil {
		job.fail(StepAddLanguage, "clicking add-language control", err)
		return false
	}
	if err := sleep(ctx, o.timing.PickerOpenDelay); err != nil {
		job.fail(StepAddLanguage, "cancelled", err)
		return false
	}

	entry, err := o.locator.PickerEntry(ctx, o.timing.LocateTimeout, variations)
	if err != nil {
		job.fail(StepSelectLanguage, "locating picker entry", err)
		return false
	}
	if entry == nil {
		job.fail(StepSelectLanguage, fmt.Sprintf("language %q not offered by the picker", job.DisplayName), nil)
		return false
	}
	if err := o.page.Click(ctx, entry.Target); err != nil {
		job.fail(StepSelectLanguage, "clicking picker entry", err)
		return false
	}
	if err := sleep(ctx, o.timing.RowAppearDelay); err != nil {
		job.fail(StepSelectLanguage, "cancelled", err)
		return false
	}
	return true
}

// openEditor hovers the language's row to reveal its edit icon and clicks
// it, opening the metadata dialog.
func (o *Orchestrator) openEditor(ctx context.Context, job *TranslationJob, variations []string) bool {
	hovers, err := o.locator.HoverTargets(ctx, job.Code, variations)
	if err != nil {
		job.fail(StepOpenEditor, "locating language row", err)
		return false
	}
	if hovers == nil {
		job.fail(StepOpenEditor, fmt.Sprintf("no row found for %q", job.DisplayName), nil)
		return false
	}
	for _, t := range hovers {
		if err := o.page.Hover(ctx, t); err != nil {
			// The hover target can vanish mid-sequence when the row
			// re-renders; the edit lookup below retries regardless.
			break
		}
	}
	if err := sleep(ctx, o.timing.HoverRevealDelay); err != nil {
		job.fail(StepOpenEditor, "cancelled", err)
		return false
	}

	edit, err := o.locator.EditControl(ctx, o.timing.LocateTimeout, job.Code, variations)
	if err != nil {
		job.fail(StepOpenEditor, "locating metadata edit control", err)
		return false
	}
	if edit == nil {
		job.fail(StepOpenEditor, "metadata edit control not found in row", nil)
		return false
	}
	if err := o.page.Click(ctx, edit.Target); err != nil {
		job.fail(StepOpenEditor, "clicking metadata edit control", err)
		return false
	}
	if err := sleep(ctx, o.timing.DialogOpenDelay); err != nil {
		job.fail(StepOpenEditor, "cancelled", err)
		return false
	}
	return true
}

// translate fills the dialog with translated metadata. With a configured
// translator the text comes from the gateway and is written into the
// dialog's fields; otherwise the host page's own translate trigger is
// clicked and left to do the work.
func (o *Orchestrator) translate(ctx context.Context, job *TranslationJob) bool {
	if o.translator != nil && !o.source.IsEmpty() {
		return o.translateViaGateway(ctx, job)
	}

	trigger, err := o.locator.TranslateTrigger(ctx, o.timing.LocateTimeout)
	if err != nil {
		job.fail(StepTranslate, "locating translate trigger", err)
		return false
	}
	if trigger == nil {
		job.fail(StepTranslate, "no translate action available in dialog", nil)
		return false
	}
	if err := o.page.Click(ctx, trigger.Target); err != nil {
		job.fail(StepTranslate, "clicking translate trigger", err)
		return false
	}
	if err := sleep(ctx, o.timing.SettleDelay); err != nil {
		job.fail(StepTranslate, "cancelled", err)
		return false
	}
	return true
}

func (o *Orchestrator) translateViaGateway(ctx context.Context, job *TranslationJob) bool {
	translated, err := o.translator.Translate(ctx, o.source, job.Code)
	if err != nil {
		job.Outcome = JobFailed
		job.Err = err
		return false
	}

	titleField, err := o.locator.DialogTitleField(ctx, o.timing.LocateTimeout)
	if err != nil {
		job.fail(StepTranslate, "locating title field", err)
		return false
	}
	if titleField == nil {
		job.fail(StepTranslate, "title field not found in dialog", nil)
		return false
	}
	if err := o.page.Fill(ctx, titleField.Target, translated.Title); err != nil {
		job.fail(StepTranslate, "filling title field", err)
		return false
	}

	if translated.Description != "" {
		descField, err := o.locator.DialogDescriptionField(ctx, o.timing.LocateTimeout)
		if err != nil {
			job.fail(StepTranslate, "locating description field", err)
			return false
		}
		if descField == nil {
			job.warn("description field not found, description skipped")
		} else if err := o.page.Fill(ctx, descField.Target, translated.Description); err != nil {
			job.fail(StepTranslate, "filling description field", err)
			return false
		}
	}
	if err := sleep(ctx, o.timing.SettleDelay); err != nil {
		job.fail(StepTranslate, "cancelled", err)
		return false
	}
	return true
}

// awaitCompletion waits for the host's confirmation banner. A timeout is a
// warning only: the metadata is already in the dialog, and the banner's
// wording varies enough across locales that absence proves nothing.
func (o *Orchestrator) awaitCompletion(ctx context.Context, job *TranslationJob) {
	banner, err := o.locator.CompletionBanner(ctx, o.timing.CompletionTimeout)
	if err != nil || banner == nil {
		job.warn("completion not confirmed within %s, proceeding", o.timing.CompletionTimeout)
	}
}

// publish clicks the publish/save control when one is present. Its absence
// is a warning, since some page variants auto-save.
func (o *Orchestrator) publish(ctx context.Context, job *TranslationJob) {
	ctrl, err := o.locator.PublishControl(ctx, o.timing.LocateTimeout)
	if err != nil || ctrl == nil {
		job.warn("publish control not found, changes may auto-save")
		return
	}
	if err := o.page.Click(ctx, ctrl.Target); err != nil {
		job.warn("publish click failed: %v", err)
		return
	}
	_ = sleep(ctx, o.timing.SettleDelay)
}
