package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"subsample/constants"
	"subsample/logger"
	"subsample/sampler"
)

// NewRootCmd builds the subsample command. A fresh command is built per
// execution so flag values never carry over between runs.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName + " [flags] <epireads>",
		Short: "Randomly subsample epireads",
		Long: constants.AppAbout + `

The input is read twice: once to count its records and once to write the
selected ones. Paths ending in .gz or .sz are read and written compressed.`,
		Version:       constants.AppVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runSample,
	}

	AddSampleFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return rootCmd
}

// GetRootCmd returns the root command, used by the docs generator
func GetRootCmd() *cobra.Command {
	return NewRootCmd()
}

// Execute runs the command against the process arguments and returns the
// exit code for main
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command with the given arguments and streams.
// Sampled records go to stdout; diagnostics go to stderr.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		logger.NewLoggerWithOutput(stderr).Error("Subsampling failed", err)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(stderr, rootCmd.UsageString())
		}
	}
	return ExitCode(err)
}

func runSample(cmd *cobra.Command, args []string) (err error) {
	if about, _ := cmd.Flags().GetBool("about"); about {
		fmt.Fprintln(cmd.OutOrStdout(), aboutMessage())
		return nil
	}

	// Bare invocation shows help and about
	if len(args) == 0 && cmd.Flags().NFlag() == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), aboutMessage())
		return nil
	}

	config, err := ParseSampleConfig(cmd, args)
	if err != nil {
		return err
	}

	level := logger.LevelWarn
	if config.Verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLoggerWithLevel(cmd.ErrOrStderr(), level)

	seed := config.Seed
	if !config.SeedSet {
		seed = sampler.ClockSeed()
	}
	log.Debug("Starting subsample",
		logger.String("input", config.InputPath),
		logger.String("output", describeOutput(config.OutputPath)),
		logger.Int("sample", config.SampleSize),
		logger.Uint64("seed", seed))

	out, err := sampler.CreateOutput(config.OutputPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	s := sampler.NewSampler(sampler.Config{
		InputPath:  config.InputPath,
		SampleSize: config.SampleSize,
	}, sampler.NewRand(seed), out, log)

	_, err = s.Run()
	return err
}

func aboutMessage() string {
	return fmt.Sprintf("%s %s\n%s", constants.AppName, constants.AppVersion, constants.AppAbout)
}
