package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"webp2png/internal/domain"
	appErrors "webp2png/internal/errors"
	"webp2png/internal/logging"
)

// Converter turns .webp files into .png files, one candidate at a time.
// All collaborators are injected; Stderr defaults to os.Stderr when nil.
type Converter struct {
	FS       FileSystem
	Codec    Codec
	Prompter ConflictPrompter
	Logger   logging.Logger
	Stderr   io.Writer
}

// Plan resolves paths and enumerates candidates without touching the
// target directory. On an invalid source the returned error has kind
// InvalidSource and the plan still carries the resolved paths.
func (c *Converter) Plan(req domain.ConversionRequest) (domain.ConversionPlan, error) {
	if c.FS == nil {
		return domain.ConversionPlan{}, errors.New("converter requires FS")
	}

	paths, err := c.Resolve(req)
	if err != nil {
		return domain.ConversionPlan{}, err
	}
	plan := domain.ConversionPlan{Paths: paths}

	if req.Batch {
		if !c.isDir(paths.Source) {
			// Batch over a non-directory silently yields nothing.
			// Known quirk, kept for compatibility.
			return plan, nil
		}
		entries, err := c.FS.ReadDir(paths.Source)
		if err != nil {
			return plan, appErrors.Wrap(appErrors.IOFailure, "readdir", paths.Source, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !domain.IsWebP(entry.Name()) {
				continue
			}
			candidate := domain.NewCandidate(filepath.Join(paths.Source, entry.Name()), paths.TargetDir)
			plan.Candidates = append(plan.Candidates, candidate)
		}
		return plan, nil
	}

	if c.isFile(paths.Source) && domain.IsWebP(paths.Source) {
		plan.Candidates = append(plan.Candidates, domain.NewCandidate(paths.Source, paths.TargetDir))
		return plan, nil
	}

	return plan, appErrors.Wrap(appErrors.InvalidSource, "enumerate", paths.Source, errors.New("not a .webp file"))
}

// Run processes every candidate sequentially and returns the final
// counters. Per-file failures are logged and counted, never fatal; only
// environment failures (unusable target directory, filesystem faults
// during planning) abort the run.
func (c *Converter) Run(ctx context.Context, req domain.ConversionRequest) (domain.RunCounters, error) {
	var counters domain.RunCounters

	if c.FS == nil || c.Codec == nil || c.Prompter == nil {
		return counters, errors.New("converter requires FS, Codec and Prompter")
	}

	plan, err := c.Plan(req)
	if err != nil && !appErrors.IsKind(err, appErrors.InvalidSource) {
		return counters, err
	}

	if dirErr := c.ensureTargetDir(plan.Paths); dirErr != nil {
		return counters, dirErr
	}

	if err != nil {
		fmt.Fprintln(c.errout(), appErrors.UserMessage(err))
		c.Logger.Errorf("The source %s is not a valid .webp file or does not exist.", plan.Paths.Source)
		c.logSummary(counters)
		return counters, nil
	}

	stop := c.Logger.Measure("Conversion run")
	defer stop()

	for _, candidate := range plan.Candidates {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return counters, ctxErr
		}
		counters.Record(c.convert(candidate))
	}

	c.logSummary(counters)
	return counters, nil
}

func (c *Converter) convert(candidate domain.Candidate) domain.Outcome {
	exists, err := c.FS.Exists(candidate.TargetPath)
	if err != nil {
		c.Logger.Errorf("Failed to convert %s. Error: %v", candidate.Name, err)
		return domain.Failed
	}
	if exists && !c.Prompter.Replace(filepath.Base(candidate.TargetPath)) {
		c.Logger.Infof("Skipped conversion of %s.", candidate.Name)
		return domain.Skipped
	}

	img, err := c.Codec.DecodeFile(candidate.SourcePath)
	if err != nil {
		c.Logger.Errorf("Failed to convert %s. Error: %v", candidate.Name, err)
		return domain.Failed
	}
	if err := c.Codec.EncodeFile(img, candidate.TargetPath); err != nil {
		c.Logger.Errorf("Failed to convert %s. Error: %v", candidate.Name, err)
		return domain.Failed
	}

	c.Logger.Infof("Successfully converted %s to %s.", candidate.Name, domain.TargetExt)
	return domain.Converted
}

func (c *Converter) logSummary(counters domain.RunCounters) {
	c.Logger.Infof("Conversion completed. %d successful, %d failed, %d skipped.",
		counters.Successful, counters.Failed, counters.Skipped)
}

func (c *Converter) errout() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}
