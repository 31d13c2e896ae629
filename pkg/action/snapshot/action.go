package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/copytogen/pkg/action/generate"
	"github.com/cmmoran/copytogen/pkg/generator"
	"github.com/cmmoran/copytogen/pkg/manifest"
)

// Generate writes a snapshot of the generated copy methods into a
// version-named directory below opts.OutDir and records it in the manifest.
func Generate(opts *generator.Options, manifestPath, snapshotName, snapshotVersion string) ([]string, error) {
	version, err := manifest.CanonicalVersion(snapshotVersion)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	o := *opts
	if err = o.Normalize(); err != nil {
		return nil, err
	}
	o.OutDir = filepath.Join(o.OutDir, version)

	files, err := generate.Generate(&o)
	if err != nil {
		return nil, err
	}

	if err = m.AddSnapshot(manifest.Snapshot{Name: snapshotName, Version: version, Files: files}); err != nil {
		return nil, err
	}
	if err = m.Save(manifestPath); err != nil {
		return nil, err
	}

	return files, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and previous
// snapshot files, and returns a textual diff of their contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentFiles := m.SnapshotFiles(m.CurrentVersion)
	previousFiles := m.SnapshotFiles(m.PreviousVersion)

	if len(currentFiles) == 0 || len(previousFiles) == 0 {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := readAll(currentFiles)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := readAll(previousFiles)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(previous, current), nil
}

// readAll keys every file's content by its base name, so the same class in
// two snapshot directories lines up in the diff.
func readAll(files []string) (map[string]string, error) {
	out := make(map[string]string, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		out[filepath.Base(f)] = strings.ReplaceAll(string(data), "\r\n", "\n")
	}
	return out, nil
}
