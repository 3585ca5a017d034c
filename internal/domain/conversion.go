package domain

import (
	"path/filepath"
	"strings"
)

const (
	SourceExt = ".webp"
	TargetExt = ".png"
)

// ConversionRequest carries the caller's raw input for one run. Empty
// Source or TargetDir means "not provided" and triggers the defaulting
// rules in the resolver.
type ConversionRequest struct {
	Source    string
	TargetDir string
	Batch     bool
}

// ResolvedPaths is the effective source and target location of a run,
// derived once from the request.
type ResolvedPaths struct {
	Source    string
	TargetDir string
}

// Candidate is a .webp file selected for conversion, together with the
// destination path its PNG will be written to.
type Candidate struct {
	SourcePath string
	Name       string
	TargetPath string
}

func NewCandidate(sourcePath, targetDir string) Candidate {
	name := filepath.Base(sourcePath)
	targetName := strings.TrimSuffix(name, SourceExt) + TargetExt
	return Candidate{
		SourcePath: sourcePath,
		Name:       name,
		TargetPath: filepath.Join(targetDir, targetName),
	}
}

// IsWebP reports whether name carries the source extension. The suffix
// match is case-sensitive, so SAMPLE.WEBP is not a candidate.
func IsWebP(name string) bool {
	return strings.HasSuffix(name, SourceExt)
}
