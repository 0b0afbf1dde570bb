package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SampleConfig holds the configuration for a sampling run
type SampleConfig struct {
	InputPath  string
	OutputPath string
	SampleSize int
	Seed       uint64
	SeedSet    bool
	Verbose    bool
}

// ParseSampleConfig extracts and validates the sampling configuration from
// the cobra command. Problems with the invocation are returned as *UsageError.
func ParseSampleConfig(cmd *cobra.Command, args []string) (*SampleConfig, error) {
	if !cmd.Flags().Changed("sample") {
		return nil, usageErrorf("required option --sample (-n) is missing")
	}
	if len(args) != 1 {
		return nil, usageErrorf("expected exactly one epireads file, got %d", len(args))
	}

	sampleSize, _ := cmd.Flags().GetInt("sample")
	output, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetUint64("seed")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if sampleSize < 0 {
		return nil, usageErrorf("sample size must not be negative, got %d", sampleSize)
	}
	if args[0] == "" {
		return nil, usageErrorf("epireads path must not be empty")
	}

	return &SampleConfig{
		InputPath:  args[0],
		OutputPath: output,
		SampleSize: sampleSize,
		Seed:       seed,
		SeedSet:    cmd.Flags().Changed("seed"),
		Verbose:    verbose,
	}, nil
}

// AddSampleFlags adds the sampling flags to a cobra command
func AddSampleFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("sample", "n", 0, "sample size (required)")
	cmd.Flags().StringP("output", "o", "", "output file name (default: stdout)")
	cmd.Flags().BoolP("verbose", "v", false, "print more run info")
	cmd.Flags().Uint64P("seed", "s", 0, "random seed (default: derived from the clock)")
	cmd.Flags().Bool("about", false, "print about message")

	// Declared before cobra adds its own so that -? is the shorthand
	cmd.Flags().BoolP("help", "?", false, "print this help message")
}

func describeOutput(path string) string {
	if path == "" {
		return "stdout"
	}
	return fmt.Sprintf("file %s", path)
}
