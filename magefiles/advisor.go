//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var bin = filepath.Join(binDir, binName)

// Analyze builds the CLI and analyzes a research topic.
func Analyze(topic string) error {
	mg.Deps(Build)
	return sh.RunV(bin, "analyze", topic)
}

// Inspire builds the CLI and suggests topics for a field at a level.
func Inspire(field, level string) error {
	mg.Deps(Build)
	return sh.RunV(bin, "inspire", "--field", field, "--level", level)
}

// Review builds the CLI and reviews the paper at path.
func Review(path, level string) error {
	mg.Deps(Build)
	return sh.RunV(bin, "review", path, "--level", level)
}

// Replay re-renders every saved reply under testdata/replies without
// calling the model. Files are named <kind>-<anything>.md.
func Replay() error {
	mg.Deps(Build)
	files, err := filepath.Glob(filepath.Join("testdata", "replies", "*.md"))
	if err != nil {
		return err
	}
	for _, f := range files {
		kind := replayKind(filepath.Base(f))
		if kind == "" {
			continue
		}
		if err := sh.RunV(bin, "parse", kind, f); err != nil {
			return err
		}
	}
	return nil
}

func replayKind(name string) string {
	for _, kind := range []string{"analysis", "feedback", "inspiration"} {
		if len(name) > len(kind) && name[:len(kind)+1] == kind+"-" {
			return kind
		}
	}
	return ""
}
