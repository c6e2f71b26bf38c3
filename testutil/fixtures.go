/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for tokenbridge.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tokenbridge/tokenbridge/internal/mapfs"
)

// LoadFixtureFile reads a single fixture file from testdata and returns its
// content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	// Try multiple relative roots since go test changes working directory
	// per package.
	possiblePaths := []string{
		filepath.Join("testdata", fixturePath),
		filepath.Join("..", "testdata", fixturePath),
		filepath.Join("..", "..", "testdata", fixturePath),
	}

	for _, path := range possiblePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// NewSourceFS returns an in-memory filesystem holding the given files, keyed
// by virtual path.
func NewSourceFS(t *testing.T, files map[string]string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()
	for path, content := range files {
		mfs.AddFile(path, content, 0644)
	}
	return mfs
}
