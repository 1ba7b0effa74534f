package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodcodedev/langbase/descr"
	"github.com/goodcodedev/langbase/lang"
)

// loadModel parses and builds the .lang description at path, returning
// the built Model alongside the bare language key its file name
// implies (the base name with its extension stripped), the way Emit's
// langKey parameter is meant to be derived.
func loadModel(path string) (*lang.Model, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot open description file %s: %w", path, err)
	}
	defer f.Close()

	source, err := descr.Parse(path, f)
	if err != nil {
		return nil, "", err
	}

	m, err := lang.Build(source)
	if err != nil {
		return nil, "", err
	}

	base := filepath.Base(path)
	langKey := strings.TrimSuffix(base, filepath.Ext(base))
	return m, langKey, nil
}
