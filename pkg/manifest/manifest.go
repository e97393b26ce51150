// Package manifest parses TOML batch manifests.
//
// A manifest describes a list of enumeration jobs with shared defaults:
//
//	[defaults]
//	variant = "droop"
//	formats = ["text", "svg"]
//	output = "out"
//
//	[[jobs]]
//	name = "dominant"
//	perm = [3, 2, 5, 1, 4]
//
//	[[jobs]]
//	name = "k-orbit"
//	perm = [3, 1, 5, 2, 4]
//	variant = "k"
//
// Job fields left empty inherit from [defaults].
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bumpless/pkg/bpd"
)

// ErrInvalidManifest is returned when a manifest fails validation.
var ErrInvalidManifest = errors.New("invalid manifest")

// Formats the pipeline can produce.
var knownFormats = map[string]bool{
	"text": true,
	"json": true,
	"dot":  true,
	"svg":  true,
	"png":  true,
	"pdf":  true,
}

// Manifest is a parsed batch manifest with defaults already applied to
// every job.
type Manifest struct {
	Defaults Defaults `toml:"defaults"`
	Jobs     []Job    `toml:"jobs"`
}

// Defaults supplies fallback values for job fields.
type Defaults struct {
	Variant string   `toml:"variant"`
	Formats []string `toml:"formats"`
	Output  string   `toml:"output"`
	Unicode bool     `toml:"unicode"`
}

// Job is one enumeration task.
type Job struct {
	Name    string   `toml:"name"`
	Perm    []int    `toml:"perm"`
	Variant string   `toml:"variant"`
	Formats []string `toml:"formats"`
	Output  string   `toml:"output"`
	Unicode bool     `toml:"unicode"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses manifest bytes, applies defaults, and validates.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	for i := range m.Jobs {
		job := &m.Jobs[i]
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
		if job.Variant == "" {
			job.Variant = m.Defaults.Variant
		}
		if job.Variant == "" {
			job.Variant = string(bpd.VariantDroop)
		}
		if len(job.Formats) == 0 {
			job.Formats = m.Defaults.Formats
		}
		if len(job.Formats) == 0 {
			job.Formats = []string{"text"}
		}
		if job.Output == "" {
			job.Output = m.Defaults.Output
		}
		if !job.Unicode {
			job.Unicode = m.Defaults.Unicode
		}
	}
}

// Validate checks every job for a usable permutation, variant, and
// format list.
func (m *Manifest) Validate() error {
	if len(m.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidManifest)
	}
	for _, job := range m.Jobs {
		if err := bpd.Perm(job.Perm).Validate(); err != nil {
			return fmt.Errorf("%w: job %q: %v", ErrInvalidManifest, job.Name, err)
		}
		if _, err := bpd.ParseVariant(job.Variant); err != nil {
			return fmt.Errorf("%w: job %q: %v", ErrInvalidManifest, job.Name, err)
		}
		for _, f := range job.Formats {
			if !knownFormats[f] {
				return fmt.Errorf("%w: job %q: unknown format %q", ErrInvalidManifest, job.Name, f)
			}
		}
	}
	return nil
}
