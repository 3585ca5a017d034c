package app

import (
	"path/filepath"

	"webp2png/internal/domain"
	appErrors "webp2png/internal/errors"
)

// Resolve derives the effective source and target directory from the
// request. Rules, in order:
//
//  1. no source: both default to the working directory
//  2. source is a file, no target: target is the source's parent
//  3. source is a directory, no target: target is the source itself
//  4. source does not exist, no target: target is the working directory
//
// A nonexistent source is not an error here; enumeration decides that.
func (c *Converter) Resolve(req domain.ConversionRequest) (domain.ResolvedPaths, error) {
	if req.Source == "" {
		cwd, err := c.FS.Getwd()
		if err != nil {
			return domain.ResolvedPaths{}, appErrors.Wrap(appErrors.Internal, "getwd", "", err)
		}
		return domain.ResolvedPaths{Source: cwd, TargetDir: cwd}, nil
	}

	paths := domain.ResolvedPaths{Source: req.Source, TargetDir: req.TargetDir}
	if paths.TargetDir != "" {
		return paths, nil
	}

	switch {
	case c.isFile(req.Source):
		paths.TargetDir = filepath.Dir(req.Source)
	case c.isDir(req.Source):
		paths.TargetDir = req.Source
	default:
		cwd, err := c.FS.Getwd()
		if err != nil {
			return domain.ResolvedPaths{}, appErrors.Wrap(appErrors.Internal, "getwd", "", err)
		}
		paths.TargetDir = cwd
	}
	return paths, nil
}

// ensureTargetDir creates the target directory (with parents) when it
// does not exist yet. Failure here is fatal for the run.
func (c *Converter) ensureTargetDir(paths domain.ResolvedPaths) error {
	if c.isDir(paths.TargetDir) {
		return nil
	}
	if err := c.FS.MkdirAll(paths.TargetDir, 0o755); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "mkdir", paths.TargetDir, err)
	}
	c.Logger.Infof("Created target directory: %s", paths.TargetDir)
	return nil
}

func (c *Converter) isFile(path string) bool {
	info, err := c.FS.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *Converter) isDir(path string) bool {
	info, err := c.FS.Stat(path)
	return err == nil && info.IsDir()
}
