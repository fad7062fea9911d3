package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
)

var detectLabel bool

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Detect the language of text (or a picker label with --label)",
	Long: `Detects the language of the given text by script and keyword
analysis, falling back to English. With --label the input is treated as a
UI label from the host page's language picker and resolved against the
catalog's display-name variations instead.

Reads stdin when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sample string
		if len(args) == 1 {
			sample = args[0]
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			sample = string(data)
		}
		sample = strings.TrimSpace(sample)
		if sample == "" {
			return fmt.Errorf("no text to detect")
		}

		cat := studiolingo.NewCatalog()
		var code string
		if detectLabel {
			code = cat.DetectFromLabel(sample)
		} else {
			code = studiolingo.DetectFromText(sample)
		}
		entry := cat.Get(code)
		fmt.Printf("%s %s (%s)\n", entry.Flag, entry.DisplayName, entry.Code)
		return nil
	},
}

func init() {
	detectCmd.Flags().BoolVar(&detectLabel, "label", false, "treat input as a picker label, not prose")
	rootCmd.AddCommand(detectCmd)
}
