package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studiolingo/studiolingo/cache"
)

var (
	cacheRedisURL string
	cacheTTL      int
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the shared translation cache",
}

var cacheImportCmd = &cobra.Command{
	Use:   "import <export.json>",
	Short: "Load exported translation cache entries into Redis",
	Long: `Imports a cache export file (produced by an embedding application's
exporter) into a Redis translation cache, so a team or a second machine
does not re-pay for prompts already answered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cacheRedisURL == "" {
			return fmt.Errorf("--redis is required")
		}
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: cacheRedisURL, TTL: cacheTTL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()

		result, err := cache.NewImporter(rc).ImportFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("imported %d entries (%d failed), export version %s\n",
			result.Imported, result.Failed, result.Version)
		for k, v := range result.Metadata {
			fmt.Printf("  %s: %s\n", k, v)
		}
		return nil
	},
}

func init() {
	cacheImportCmd.Flags().StringVar(&cacheRedisURL, "redis", "", "redis URL of the target cache (required)")
	cacheImportCmd.Flags().IntVar(&cacheTTL, "cache-ttl", 86400, "TTL in seconds for imported entries")
	cacheCmd.AddCommand(cacheImportCmd)
	rootCmd.AddCommand(cacheCmd)
}
