package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"webp2png/internal/app"
	"webp2png/internal/config"
	"webp2png/internal/domain"
	appErrors "webp2png/internal/errors"
	"webp2png/internal/infra/codec"
	"webp2png/internal/infra/fs"
	"webp2png/internal/logging"
	"webp2png/internal/presentation"
	"webp2png/internal/prompt"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "webp2png [source] [targetDir]",
	Short: "Convert .webp images to .png format",
	Long: "webp2png converts a single .webp file or, with --batch, every .webp file\n" +
		"in a directory to .png. Source and target directory are both optional;\n" +
		"missing paths default to the current directory or the source's own location.",
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RunTests {
			fmt.Fprintln(cmd.OutOrStdout(), "The test suite is run with: go test ./...")
			return nil
		}
		if err := cfg.ApplyArgs(args); err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "parse args", "", err)
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&cfg.Batch, "batch", false, "process all .webp files in the source directory")
	rootCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "d", false, "show what would be converted without converting")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "do not mirror log records to the console")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "conversion log destination (default "+config.DefaultLogFile+")")
	rootCmd.Flags().BoolVar(&cfg.RunTests, "test", false, "compatibility flag; the suite is run with go test")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(logging.Options{
		FilePath: cfg.LogFile,
		Console:  os.Stdout,
		Quiet:    cfg.Quiet,
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "open log", cfg.LogFile, err)
	}
	defer logger.Close()

	converter := &app.Converter{
		FS:       fs.OSFS{},
		Codec:    codec.New(),
		Prompter: prompt.NewTerm(os.Stdin, os.Stdout),
		Logger:   logger,
		Stderr:   os.Stderr,
	}

	request := domain.ConversionRequest{
		Source:    cfg.Source,
		TargetDir: cfg.TargetDir,
		Batch:     cfg.Batch,
	}
	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}

	if cfg.DryRun {
		plan, planErr := converter.Plan(request)
		if planErr != nil {
			if appErrors.IsKind(planErr, appErrors.InvalidSource) {
				fmt.Fprintln(os.Stderr, appErrors.UserMessage(planErr))
				return nil
			}
			return planErr
		}
		printer.PrintDryRun(plan)
		return nil
	}

	counters, err := converter.Run(ctx, request)
	if err != nil {
		return err
	}
	printer.PrintSummary(counters)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}
