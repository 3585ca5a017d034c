package app

import (
	"image"
	"io/fs"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	Getwd() (string, error)
}

// Codec does the actual pixel work. DecodeFile must fail on malformed
// input; EncodeFile must fail on write errors.
type Codec interface {
	DecodeFile(path string) (image.Image, error)
	EncodeFile(img image.Image, path string) error
}

// ConflictPrompter decides whether an existing destination file may be
// replaced. The CLI wires an interactive implementation; non-interactive
// callers supply a fixed policy.
type ConflictPrompter interface {
	Replace(targetName string) bool
}
