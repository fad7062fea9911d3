package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
	"github.com/studiolingo/studiolingo/cache"
	"github.com/studiolingo/studiolingo/gateway"
)

var (
	translateTitle    string
	translateDesc     string
	translateTargets  []string
	translateSource   string
	translateModel    string
	translateRedis    string
	translateCacheTTL int
	translateQuick    bool
	translateJSON     bool
	translateTimeout  time.Duration
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a title and description via the AI gateway",
	Long: `Translates metadata into one or more target languages using the
OpenAI gateway. The API key comes from OPENAI_API_KEY. Results are cached
by content hash, in memory by default or in Redis with --redis.`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&translateTitle, "title", "", "source title (required)")
	translateCmd.Flags().StringVar(&translateDesc, "description", "", "source description")
	translateCmd.Flags().StringSliceVar(&translateTargets, "to", nil, "target language codes (required)")
	translateCmd.Flags().StringVar(&translateSource, "from", "", "source language code (default: detected)")
	translateCmd.Flags().StringVar(&translateModel, "model", "", "gateway model override")
	translateCmd.Flags().StringVar(&translateRedis, "redis", "", "redis URL for the translation cache")
	translateCmd.Flags().IntVar(&translateCacheTTL, "cache-ttl", 86400, "cache TTL in seconds")
	translateCmd.Flags().BoolVar(&translateQuick, "quick", false, "use the compact prompt variant")
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "emit results as JSON")
	translateCmd.Flags().DurationVar(&translateTimeout, "timeout", 2*time.Minute, "overall timeout")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if translateTitle == "" {
		return fmt.Errorf("--title is required")
	}
	if len(translateTargets) == 0 {
		return fmt.Errorf("--to is required")
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return &gateway.Error{Kind: gateway.KindAPIKeyMissing, Message: "OPENAI_API_KEY is not set"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	var store studiolingo.TranslationCache
	if translateRedis != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: translateRedis, TTL: translateCacheTTL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()
		store = rc
	} else {
		store = cache.NewInMemoryCache(translateCacheTTL)
	}

	gen := gateway.NewOpenAIGenerator(gateway.OpenAIConfig{APIKey: apiKey, Model: translateModel})
	wrapped := studiolingo.NewRetryableGenerator(
		studiolingo.NewRateLimitedGenerator(gen, studiolingo.RateLimitConfig{}),
		studiolingo.DefaultRetryConfig(),
	)

	source := translateSource
	if source == "" {
		source = studiolingo.DetectFromText(translateTitle + " " + translateDesc)
	}

	cat := studiolingo.NewCatalog()
	opts := []studiolingo.TranslatorOption{
		studiolingo.WithCatalog(cat),
		studiolingo.WithCache(store),
		studiolingo.WithSourceLang(source),
	}
	if translateQuick {
		opts = append(opts, studiolingo.WithQuickFlow())
	}
	translator := studiolingo.NewTranslator(wrapped, opts...)

	type result struct {
		Code        string `json:"code"`
		Language    string `json:"language"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
	}
	var results []result

	src := studiolingo.Metadata{Title: translateTitle, Description: translateDesc}
	for _, target := range translateTargets {
		entry := cat.Get(target)
		out, err := translator.Translate(ctx, src, target)
		if err != nil {
			printError(fmt.Sprintf("translating to %s", entry.DisplayName), err)
			if gateway.ShouldStopBatch(err) {
				return err
			}
			continue
		}
		if translateJSON {
			results = append(results, result{
				Code:        entry.Code,
				Language:    entry.DisplayName,
				Title:       out.Title,
				Description: out.Description,
			})
			continue
		}
		fmt.Printf("%s %s (%s)\n", entry.Flag, entry.DisplayName, entry.Code)
		fmt.Printf("  title: %s\n", out.Title)
		if out.Description != "" {
			fmt.Printf("  description: %s\n", indentLines(out.Description, "  "))
		}
	}

	if translateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return nil
}

func indentLines(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
