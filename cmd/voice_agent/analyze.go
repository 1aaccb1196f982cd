package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute structural metrics for a text file",
	Long:  "Runs the deterministic structural analysis (sentence, word, paragraph, and punctuation metrics) on a text file. No API key needed; nothing is persisted.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary instead of raw JSON")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result := analysis.AnalyzeStructure(string(content))

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintStructuralAnalysis(&result)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
