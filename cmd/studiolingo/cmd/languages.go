package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Manage the language subscription",
}

var languagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the subscribed languages in order",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadStore()
		if err != nil {
			return err
		}
		cat := studiolingo.NewCatalog()
		sub := state.ApplyTo(cat)
		for i, code := range sub {
			entry := cat.Get(code)
			marker := " "
			if studiolingo.IsProtected(code) {
				marker = "*"
			}
			fmt.Printf("%2d %s %s %s (%s)\n", i+1, marker, entry.Flag, entry.DisplayName, entry.Code)
		}
		fmt.Println("\n* protected (always first, cannot be removed)")
		return nil
	},
}

var languagesAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "Show catalog languages not yet subscribed",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadStore()
		if err != nil {
			return err
		}
		cat := studiolingo.NewCatalog()
		sub := state.ApplyTo(cat)
		for _, code := range cat.ListAvailable(sub) {
			entry := cat.Get(code)
			fmt.Printf("%s %s (%s)\n", entry.Flag, entry.DisplayName, entry.Code)
		}
		return nil
	},
}

var languagesAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Subscribe a catalog language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSubscription(func(cat *studiolingo.Catalog, sub []string) ([]string, error) {
			return cat.Subscribe(sub, args[0])
		})
	},
}

var languagesRemoveCmd = &cobra.Command{
	Use:   "remove <code>",
	Short: "Unsubscribe a language (protected ones refuse)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSubscription(func(cat *studiolingo.Catalog, sub []string) ([]string, error) {
			return cat.Unsubscribe(sub, args[0])
		})
	},
}

var languagesCustomCmd = &cobra.Command{
	Use:   "custom <code> <name>",
	Short: "Define and subscribe a custom language",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, state, err := loadStore()
		if err != nil {
			return err
		}
		cat := studiolingo.NewCatalog()
		sub := state.ApplyTo(cat)
		sub, err = cat.AddCustom(sub, args[0], args[1])
		if err != nil {
			return err
		}
		state.Subscription = sub
		state.Custom = cat.CustomEntries()
		return store.Save(state)
	},
}

var languagesMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Reorder a subscribed language (1-based positions)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position %q", args[0])
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position %q", args[1])
		}
		return mutateSubscription(func(cat *studiolingo.Catalog, sub []string) ([]string, error) {
			return cat.Reorder(sub, from-1, to-1), nil
		})
	},
}

var languagesSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the subscription alphabetically (protected stay first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSubscription(func(cat *studiolingo.Catalog, sub []string) ([]string, error) {
			return cat.SortAlphabetical(sub), nil
		})
	},
}

var languagesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the subscription to the default set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateSubscription(func(cat *studiolingo.Catalog, sub []string) ([]string, error) {
			return cat.ResetToDefault(), nil
		})
	},
}

func mutateSubscription(fn func(cat *studiolingo.Catalog, sub []string) ([]string, error)) error {
	store, state, err := loadStore()
	if err != nil {
		return err
	}
	cat := studiolingo.NewCatalog()
	sub := state.ApplyTo(cat)
	sub, err = fn(cat, sub)
	if err != nil {
		return err
	}
	state.Subscription = sub
	return store.Save(state)
}

func init() {
	languagesCmd.AddCommand(languagesListCmd)
	languagesCmd.AddCommand(languagesAvailableCmd)
	languagesCmd.AddCommand(languagesAddCmd)
	languagesCmd.AddCommand(languagesRemoveCmd)
	languagesCmd.AddCommand(languagesCustomCmd)
	languagesCmd.AddCommand(languagesMoveCmd)
	languagesCmd.AddCommand(languagesSortCmd)
	languagesCmd.AddCommand(languagesResetCmd)
	rootCmd.AddCommand(languagesCmd)
}
