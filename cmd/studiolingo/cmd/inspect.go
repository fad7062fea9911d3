package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
	"github.com/studiolingo/studiolingo/dom"
)

var inspectLang string

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot.html>",
	Short: "Report which controls the locator finds in a page snapshot",
	Long: `Loads a saved HTML snapshot of the host page and runs every locator
strategy against it, reporting what is found where. Useful when the host
page changes layout and lookups start missing.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectLang, "lang", "ja", "language code used for row and picker lookups")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 -- path is caller-chosen by design
	if err != nil {
		return err
	}
	page, err := dom.NewFakePage(string(data))
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	cat := studiolingo.NewCatalog()
	entry := cat.Get(inspectLang)
	variations := cat.Variations(inspectLang)

	ctx := context.Background()
	loc := dom.NewLocator(page, time.Millisecond)
	timeout := 10 * time.Millisecond

	report := func(name string, el *dom.Element, err error) {
		switch {
		case err != nil:
			fmt.Printf("  %-22s error: %v\n", name, err)
		case el == nil:
			fmt.Printf("  %-22s not found\n", name)
		default:
			text := el.Text()
			if len(text) > 60 {
				text = text[:60] + "..."
			}
			fmt.Printf("  %-22s found: %q\n", name, text)
		}
	}

	fmt.Printf("inspecting %s for %s %s (%s)\n", args[0], entry.Flag, entry.DisplayName, entry.Code)

	el, err := loc.AddLanguageControl(ctx, timeout)
	report("add-language", el, err)
	el, err = loc.PickerEntry(ctx, timeout, variations)
	report("picker entry", el, err)
	el, err = loc.LanguageRow(ctx, timeout, inspectLang, variations)
	report("language row", el, err)
	el, err = loc.EditControl(ctx, timeout, inspectLang, variations)
	report("edit control", el, err)
	el, err = loc.TranslateTrigger(ctx, timeout)
	report("translate trigger", el, err)
	el, err = loc.DialogTitleField(ctx, timeout)
	report("title field", el, err)
	el, err = loc.DialogDescriptionField(ctx, timeout)
	report("description field", el, err)
	el, err = loc.PublishControl(ctx, timeout)
	report("publish control", el, err)
	el, err = loc.CompletionBanner(ctx, timeout)
	report("completion banner", el, err)
	return nil
}
