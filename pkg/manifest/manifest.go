package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

var ErrInvalidVersion = errors.New("invalid snapshot version")

// Snapshot represents one recorded generation run in the manifest.
type Snapshot struct {
	Name    string   `yaml:"name" json:"name"`
	Version string   `yaml:"version" json:"version"`
	Files   []string `yaml:"files" json:"files"`
}

// Manifest tracks the lifecycle of generated copy method snapshots.
type Manifest struct {
	CurrentVersion  string     `yaml:"current_version" json:"current_version"`
	PreviousVersion string     `yaml:"previous_version" json:"previous_version"`
	Snapshots       []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// CanonicalVersion returns v in canonical semver form ("1.2" becomes
// "v1.2.0"), or ErrInvalidVersion.
func CanonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return semver.Canonical(v), nil
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddSnapshot records a snapshot, updating version pointers and replacing an
// existing entry that shares the same name and version. The version is
// stored in canonical semver form.
func (m *Manifest) AddSnapshot(s Snapshot) error {
	v, err := CanonicalVersion(s.Version)
	if err != nil {
		return err
	}
	s.Version = v

	if m.CurrentVersion != "" && m.CurrentVersion != v {
		m.PreviousVersion = m.CurrentVersion
	}
	m.CurrentVersion = v

	for i := range m.Snapshots {
		if m.Snapshots[i].Name == s.Name && m.Snapshots[i].Version == s.Version {
			m.Snapshots[i] = s
			return nil
		}
	}

	m.Snapshots = append(m.Snapshots, s)
	return nil
}

// SnapshotFiles returns the files recorded for the provided version.
func (m *Manifest) SnapshotFiles(version string) []string {
	if v, err := CanonicalVersion(version); err == nil {
		version = v
	}
	var files []string
	for _, s := range m.Snapshots {
		if s.Version == version {
			files = append(files, s.Files...)
		}
	}
	return files
}

// Sorted returns the snapshots ordered by ascending version, then name.
func (m *Manifest) Sorted() []Snapshot {
	out := slices.Clone(m.Snapshots)
	slices.SortStableFunc(out, func(a, b Snapshot) int {
		if c := semver.Compare(a.Version, b.Version); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
