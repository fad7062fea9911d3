package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
)

var statePath string

var rootCmd = &cobra.Command{
	Use:   "studiolingo",
	Short: "Multi-language studio metadata translation automation",
	Long: `studiolingo drives a studio page through translating a video's title
and description into many languages at once: it manages the language
subscription, detects languages from text or UI labels, obtains
translations through an AI gateway, and rehearses full batch runs
against page snapshots.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "subscription state file (default: user config dir)")
}

// loadStore resolves the state path and returns the store plus its loaded
// state.
func loadStore() (*studiolingo.FileStore, *studiolingo.SubscriptionState, error) {
	path := statePath
	if path == "" {
		var err error
		path, err = studiolingo.DefaultStorePath()
		if err != nil {
			return nil, nil, err
		}
	}
	store := studiolingo.NewFileStore(path)
	state, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, state, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
