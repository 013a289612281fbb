package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/soda3x/barista/pkg/action/generate"
	"github.com/soda3x/barista/pkg/generator"
	"github.com/soda3x/barista/pkg/manifest"
)

// Generate brews the boilerplate to the configured output file and
// records it in the manifest under the configured snapshot version.
func Generate(opts *generator.Options) (string, error) {
	if opts.OutFile == "" {
		return "", fmt.Errorf("snapshots require an output file")
	}
	if opts.SnapshotVersion == "" {
		return "", fmt.Errorf("snapshots require a version")
	}

	m, err := manifest.Load(opts.ManifestFile)
	if err != nil {
		return "", err
	}

	class, err := generate.Run(opts)
	if err != nil {
		return "", err
	}

	outFile := filepath.Clean(opts.OutFile)
	m.AddSnapshot(manifest.Snapshot{
		Class:    class,
		Version:  opts.SnapshotVersion,
		File:     outFile,
		Emitters: opts.EnabledEmitters(),
	})

	if err := m.Save(opts.ManifestFile); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their
// contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
