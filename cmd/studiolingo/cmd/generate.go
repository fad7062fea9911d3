package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	studiolingo "github.com/studiolingo/studiolingo"
	"github.com/studiolingo/studiolingo/gateway"
)

var (
	generateTitle    string
	generateDesc     string
	generateModel    string
	generateJSON     bool
	generateTimeout  time.Duration
	titleStyle       string
	titleAudience    string
	titleLength      string
	titleLanguage    string
	titleKeyword     string
	titleEmoji       bool
	descStyle        string
	descLength       string
	descEmoji        bool
	descHashtags     bool
	descCTA          bool
	tagsCount        int
	tagsLanguage     string
	tagsLongTail     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fresh metadata via the AI gateway",
	Long: `Generates new metadata seeded from the existing title and
description: alternative titles, a full description, or search tags. The
API key comes from OPENAI_API_KEY.`,
}

var generateTitlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Suggest alternative titles",
	RunE:  runGenerateTitles,
}

var generateDescriptionCmd = &cobra.Command{
	Use:   "description",
	Short: "Write a description from the title",
	RunE:  runGenerateDescription,
}

var generateTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Generate search tags",
	RunE:  runGenerateTags,
}

func init() {
	generateCmd.PersistentFlags().StringVar(&generateTitle, "title", "", "source title")
	generateCmd.PersistentFlags().StringVar(&generateDesc, "description", "", "source description")
	generateCmd.PersistentFlags().StringVar(&generateModel, "model", "", "gateway model override")
	generateCmd.PersistentFlags().BoolVar(&generateJSON, "json", false, "emit results as JSON")
	generateCmd.PersistentFlags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "overall timeout")

	generateTitlesCmd.Flags().StringVar(&titleStyle, "style", "viral", "title style (viral, clickbait, seo, pro, casual)")
	generateTitlesCmd.Flags().StringVar(&titleAudience, "audience", "general", "target audience")
	generateTitlesCmd.Flags().StringVar(&titleLength, "length", "auto", "length hint (auto, short, medium, long)")
	generateTitlesCmd.Flags().StringVar(&titleLanguage, "language", "", "output language code (default: same as source)")
	generateTitlesCmd.Flags().StringVar(&titleKeyword, "keyword", "", "keyword every suggestion must include")
	generateTitlesCmd.Flags().BoolVar(&titleEmoji, "emoji", false, "include emoji")

	generateDescriptionCmd.Flags().StringVar(&descStyle, "style", "informative", "description style (informative, engaging, professional, casual)")
	generateDescriptionCmd.Flags().StringVar(&descLength, "length", "medium", "length hint (short, medium, long)")
	generateDescriptionCmd.Flags().BoolVar(&descEmoji, "emoji", false, "include emoji")
	generateDescriptionCmd.Flags().BoolVar(&descHashtags, "hashtags", false, "append hashtags")
	generateDescriptionCmd.Flags().BoolVar(&descCTA, "cta", true, "include a call to action")

	generateTagsCmd.Flags().IntVar(&tagsCount, "count", studiolingo.DefaultTagCount, "number of tags")
	generateTagsCmd.Flags().StringVar(&tagsLanguage, "tag-language", "mixed", "tag language mix (mixed, english, local)")
	generateTagsCmd.Flags().BoolVar(&tagsLongTail, "longtail", true, "mix in long-tail keyword phrases")

	generateCmd.AddCommand(generateTitlesCmd)
	generateCmd.AddCommand(generateDescriptionCmd)
	generateCmd.AddCommand(generateTagsCmd)
	rootCmd.AddCommand(generateCmd)
}

func newAssistant() (*studiolingo.Assistant, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, &gateway.Error{Kind: gateway.KindAPIKeyMissing, Message: "OPENAI_API_KEY is not set"}
	}
	gen := gateway.NewOpenAIGenerator(gateway.OpenAIConfig{APIKey: apiKey, Model: generateModel})
	wrapped := studiolingo.NewRetryableGenerator(
		studiolingo.NewRateLimitedGenerator(gen, studiolingo.RateLimitConfig{}),
		studiolingo.DefaultRetryConfig(),
	)
	return studiolingo.NewAssistant(wrapped), nil
}

func generateSource() studiolingo.Metadata {
	return studiolingo.Metadata{Title: generateTitle, Description: generateDesc}
}

func runGenerateTitles(cmd *cobra.Command, args []string) error {
	if generateTitle == "" && generateDesc == "" {
		return fmt.Errorf("--title or --description is required")
	}
	assistant, err := newAssistant()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	titles, err := assistant.SuggestTitles(ctx, generateSource(), studiolingo.TitleOptions{
		Style:    studiolingo.TitleStyle(titleStyle),
		Audience: titleAudience,
		Length:   studiolingo.TitleLengthHint(titleLength),
		Language: titleLanguage,
		Keyword:  titleKeyword,
		Emoji:    titleEmoji,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		return emitJSON(map[string][]string{"titles": titles})
	}
	for i, title := range titles {
		fmt.Printf("%d. %s\n", i+1, title)
	}
	return nil
}

func runGenerateDescription(cmd *cobra.Command, args []string) error {
	if generateTitle == "" {
		return fmt.Errorf("--title is required")
	}
	assistant, err := newAssistant()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	desc, err := assistant.GenerateDescription(ctx, generateSource(), studiolingo.DescriptionOptions{
		Style:        studiolingo.DescriptionStyle(descStyle),
		Length:       studiolingo.DescriptionLengthHint(descLength),
		Emoji:        descEmoji,
		Hashtags:     descHashtags,
		CallToAction: descCTA,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		return emitJSON(map[string]string{"description": desc})
	}
	fmt.Println(desc)
	return nil
}

func runGenerateTags(cmd *cobra.Command, args []string) error {
	if generateTitle == "" && generateDesc == "" {
		return fmt.Errorf("--title or --description is required")
	}
	assistant, err := newAssistant()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	tags, err := assistant.GenerateTags(ctx, generateSource(), studiolingo.TagOptions{
		Count:    tagsCount,
		Language: studiolingo.TagLanguage(tagsLanguage),
		LongTail: tagsLongTail,
	})
	if err != nil {
		return err
	}

	if generateJSON {
		return emitJSON(map[string][]string{"tags": tags})
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
