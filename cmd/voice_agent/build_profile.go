package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/observability"
	"github.com/jonathan/voice-mirror/internal/pipeline"
	"github.com/jonathan/voice-mirror/internal/types"
)

var buildProfileCmd = &cobra.Command{
	Use:   "build-profile",
	Short: "Build a voice signature from writing sample files",
	Long:  "Analyzes writing sample files and synthesizes a merged voice signature (deterministic structural metrics plus model-derived qualitative profile) with a narrative summary.",
	RunE:  runBuildProfile,
}

var (
	buildProfileInputFiles []string
	buildProfileOutputFile string
	buildProfileAPIKey     string
	buildProfileModel      string
	buildProfileVerbose    bool
)

func init() {
	buildProfileCmd.Flags().StringArrayVarP(&buildProfileInputFiles, "in", "i", nil, "Path to a writing sample text file (repeat for each sample, at least 3 required)")
	buildProfileCmd.Flags().StringVarP(&buildProfileOutputFile, "out", "o", "", "Path to output signature JSON file (required)")
	buildProfileCmd.Flags().StringVar(&buildProfileAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	buildProfileCmd.Flags().StringVar(&buildProfileModel, "model", "", "Model name to use for both tiers (overrides the defaults)")
	buildProfileCmd.Flags().BoolVarP(&buildProfileVerbose, "verbose", "v", false, "Print the signature summary to stdout")

	if err := buildProfileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := buildProfileCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildProfileCmd)
}

// buildProfileOutput is the JSON document written by build-profile.
type buildProfileOutput struct {
	Signature   *types.StyleSignature `json:"signature"`
	SummaryText string                `json:"summaryText"`
	SampleCount int                   `json:"sampleCount"`
	TotalWords  int                   `json:"totalWords"`
}

func runBuildProfile(_ *cobra.Command, _ []string) error {
	texts := make([]string, 0, len(buildProfileInputFiles))
	for _, path := range buildProfileInputFiles {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read sample file %s: %w", path, err)
		}
		texts = append(texts, string(content))
	}

	apiKey := buildProfileAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	// Ensure output directory exists (create early, before API call)
	outputDir := filepath.Dir(buildProfileOutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	modelCfg := llm.DefaultGeminiConfig()
	if buildProfileModel != "" {
		modelCfg = modelCfg.WithModel(llm.TierFast, buildProfileModel).WithModel(llm.TierQuality, buildProfileModel)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, modelCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	engine := pipeline.New(client, nil)
	result, err := engine.BuildFromTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to build profile: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(buildProfileOutput{
		Signature:   result.Signature,
		SummaryText: result.SummaryText,
		SampleCount: result.SampleCount,
		TotalWords:  result.TotalWords,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(buildProfileOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if buildProfileVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintStyleSignature(result.Signature)
		printer.PrintSummary(result.SummaryText)
	}

	fmt.Fprintf(os.Stdout, "Successfully built voice signature from %d samples (%d words)\n", result.SampleCount, result.TotalWords)
	fmt.Fprintf(os.Stdout, "Output: %s\n", buildProfileOutputFile)

	return nil
}
