package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/observability"
	"github.com/jonathan/voice-mirror/internal/pipeline"
	"github.com/jonathan/voice-mirror/internal/rewriting"
	"github.com/jonathan/voice-mirror/internal/types"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text]",
	Short: "Rewrite text in a stored voice signature",
	Long:  "Rewrites target text to match a previously built voice signature, optionally grounding the rewrite with example sentences pulled from the original sample files. The target is read from --in or passed directly as an argument.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRewrite,
}

var (
	rewriteProfileFile string
	rewriteInputFile   string
	rewriteSampleFiles []string
	rewriteOutputFile  string
	rewriteAPIKey      string
	rewriteModel       string
	rewriteVerbose     bool
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteProfileFile, "profile", "p", "", "Path to signature JSON produced by build-profile (required)")
	rewriteCmd.Flags().StringVarP(&rewriteInputFile, "in", "i", "", "Path to target text file (alternative to passing text as an argument)")
	rewriteCmd.Flags().StringArrayVarP(&rewriteSampleFiles, "samples", "s", nil, "Path to a writing sample file used for example sentences (repeatable)")
	rewriteCmd.Flags().StringVarP(&rewriteOutputFile, "out", "o", "", "Path to output file (defaults to stdout)")
	rewriteCmd.Flags().StringVar(&rewriteAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rewriteCmd.Flags().StringVar(&rewriteModel, "model", "", "Model name to use for both tiers (overrides the defaults)")
	rewriteCmd.Flags().BoolVarP(&rewriteVerbose, "verbose", "v", false, "Print the tier and model used")

	if err := rewriteCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(_ *cobra.Command, args []string) error {
	profileContent, err := os.ReadFile(rewriteProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var stored struct {
		Signature *types.StyleSignature `json:"signature"`
	}
	if err := json.Unmarshal(profileContent, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	if stored.Signature == nil {
		return fmt.Errorf("profile file has no signature; run build-profile first")
	}

	var text string
	switch {
	case rewriteInputFile != "":
		inputContent, err := os.ReadFile(rewriteInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = strings.TrimSpace(string(inputContent))
	case len(args) == 1:
		text = strings.TrimSpace(args[0])
	default:
		return fmt.Errorf("target text is required (pass it as an argument or use --in)")
	}
	if text == "" {
		return fmt.Errorf("target text is empty")
	}
	if estimated := llm.EstimateTokens(text); estimated > pipeline.MaxRewriteTokens {
		return fmt.Errorf("input text is too long (~%d estimated tokens, maximum %d)", estimated, pipeline.MaxRewriteTokens)
	}

	samples := make([]string, 0, len(rewriteSampleFiles))
	for _, path := range rewriteSampleFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read sample file %s: %w", path, err)
		}
		samples = append(samples, string(content))
	}
	examples := analysis.ExtractFewShot(samples)

	apiKey := rewriteAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	modelCfg := llm.DefaultGeminiConfig()
	if rewriteModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierFast, rewriteModel).WithModel(llm.TierQuality, rewriteModel)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, modelCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := rewriting.RewriteText(ctx, client, text, stored.Signature, examples)
	if err != nil {
		return fmt.Errorf("failed to rewrite text: %w", err)
	}

	if rewriteVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRewrite(string(result.TierUsed), result.Model, result.RewrittenText)
	}

	if rewriteOutputFile != "" {
		if err := os.WriteFile(rewriteOutputFile, []byte(result.RewrittenText+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", rewriteOutputFile)
		return nil
	}

	if !rewriteVerbose {
		fmt.Fprintln(os.Stdout, result.RewrittenText)
	}
	return nil
}
