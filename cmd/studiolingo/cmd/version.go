package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", studiolingo.Name, studiolingo.FullVersion())
		fmt.Printf("  Build Date: %s\n", studiolingo.BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
