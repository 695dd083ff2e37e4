// Package config provides configuration loading and management for voc4cat.
//
// The configuration file (idranges.yaml) governs multi-vocabulary
// repositories: which vocabularies exist, how concept IDs look, which ID
// ranges each contributor may mint, and which workflow checks apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete voc4cat configuration
type Config struct {
	// SingleVocab restricts the repository to one vocabulary
	SingleVocab bool `yaml:"single_vocab"`
	// Vocabs maps lowercase vocabulary names to their settings
	Vocabs map[string]Vocab `yaml:"vocabs"`
	// Default is true when no configuration file was found
	Default bool `yaml:"-"`
}

// Vocab configures one vocabulary
type Vocab struct {
	// IDLength is the number of digits of the numeric IRI part (3..18)
	IDLength int `yaml:"id_length"`
	// PermanentIRIPart is the base under which concept IRIs are minted
	PermanentIRIPart string `yaml:"permanent_iri_part"`
	// Checks toggles workflow checks for this vocabulary
	Checks Checks `yaml:"checks"`
	// PrefixMap declares extra namespace prefixes
	PrefixMap map[string]string `yaml:"prefix_map"`
	// IDRange lists the ID ranges allocated to contributors
	IDRange []IDRange `yaml:"id_range"`
}

// Checks configures workflow checks
type Checks struct {
	// AllowDelete permits removing IRIs from a published vocabulary
	AllowDelete bool `yaml:"allow_delete"`
}

// IDRange allocates a contiguous block of concept IDs to one contributor
type IDRange struct {
	FirstID int `yaml:"first_id"`
	LastID  int `yaml:"last_id"`
	// GHName is the contributor's GitHub login
	GHName string `yaml:"gh_name"`
	// ORCID identifies the contributor when no GitHub login exists
	ORCID string `yaml:"orcid"`
	// RORID identifies an organization holding the range
	RORID string `yaml:"ror_id"`
}

var ghNameRe = regexp.MustCompile(`^[a-z\d](?:-?[a-z\d]){0,38}$`)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Vocabs:  map[string]Vocab{},
		Default: true,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.SingleVocab && len(c.Vocabs) > 1 {
		return fmt.Errorf("inconsistent config: single_vocab is true but %d vocabularies are configured", len(c.Vocabs))
	}
	for name, v := range c.Vocabs {
		if v.IDLength < 3 || v.IDLength > 18 {
			return fmt.Errorf("vocab %q: id_length must be between 3 and 18", name)
		}
		if !strings.HasPrefix(v.PermanentIRIPart, "http://") && !strings.HasPrefix(v.PermanentIRIPart, "https://") {
			return fmt.Errorf("vocab %q: permanent_iri_part must be an http(s) IRI", name)
		}
		used := map[int]bool{}
		for _, r := range v.IDRange {
			if r.FirstID < 1 {
				return fmt.Errorf("vocab %q: first_id must be 1 or greater", name)
			}
			if r.LastID <= r.FirstID {
				return fmt.Errorf("vocab %q: last_id (%d) must be greater than first_id (%d)", name, r.LastID, r.FirstID)
			}
			if r.GHName == "" && r.ORCID == "" {
				return fmt.Errorf("vocab %q: ID range %d-%d requires a gh_name or an orcid", name, r.FirstID, r.LastID)
			}
			if r.GHName != "" && !ghNameRe.MatchString(r.GHName) {
				return fmt.Errorf("vocab %q: gh_name %q is not a valid GitHub login", name, r.GHName)
			}
			for id := r.FirstID; id <= r.LastID; id++ {
				if used[id] {
					return fmt.Errorf("vocab %q: overlapping ID ranges at ID %d", name, id)
				}
				used[id] = true
			}
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.Default = false
	lowered := make(map[string]Vocab, len(config.Vocabs))
	for name, v := range config.Vocabs {
		lowered[strings.ToLower(name)] = v
	}
	config.Vocabs = lowered

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load returns the configuration from path, or the default configuration
// when no file exists there.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.SingleVocab {
		c.SingleVocab = true
	}
	for name, v := range other.Vocabs {
		if c.Vocabs == nil {
			c.Vocabs = map[string]Vocab{}
		}
		c.Vocabs[strings.ToLower(name)] = v
	}
	if !other.Default {
		c.Default = false
	}
}

// VocabNames returns the configured vocabulary names, sorted.
func (c *Config) VocabNames() []string {
	names := make([]string, 0, len(c.Vocabs))
	for n := range c.Vocabs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IDPattern returns the regexp matching the numeric ID part of a concept
// IRI in the named vocabulary, or nil when the vocabulary is unknown.
func (c *Config) IDPattern(vocab string) *regexp.Regexp {
	v, ok := c.Vocabs[strings.ToLower(vocab)]
	if !ok || v.IDLength <= 0 {
		return nil
	}
	return regexp.MustCompile(fmt.Sprintf(`(?P<identifier>[0-9]{%d})$`, v.IDLength))
}

// RangesByActor returns every allocated ID range keyed by contributor
// identifier (GitHub login, ORCID, or ROR ID).
func (c *Config) RangesByActor() map[string][][2]int {
	out := map[string][][2]int{}
	for _, name := range c.VocabNames() {
		for _, r := range c.Vocabs[name].IDRange {
			rng := [2]int{r.FirstID, r.LastID}
			for _, actor := range []string{r.GHName, r.ORCID, r.RORID} {
				if actor != "" {
					out[actor] = append(out[actor], rng)
				}
			}
		}
	}
	return out
}
