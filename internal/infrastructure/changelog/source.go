// Package changelog loads the release notes embedded in the binary.
package changelog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	domain "preparos/internal/domain/changelog"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/version"
)

//go:embed changelog.yaml
var embedded []byte

type document struct {
	Releases []struct {
		Version string `yaml:"version"`
		Date    string `yaml:"date"`
		Title   string `yaml:"title"`
		Body    string `yaml:"body"`
	} `yaml:"releases"`
}

// YAMLSource parses its document once and serves the result afterwards.
type YAMLSource struct {
	raw      []byte
	once     sync.Once
	releases []domain.Release
	err      error
}

// NewEmbeddedSource reads the changelog shipped with the binary.
func NewEmbeddedSource() *YAMLSource {
	return NewYAMLSource(embedded)
}

func NewYAMLSource(raw []byte) *YAMLSource {
	return &YAMLSource{raw: raw}
}

func (s *YAMLSource) Releases() ([]domain.Release, error) {
	s.once.Do(func() {
		s.releases, s.err = parse(s.raw)
	})
	return s.releases, s.err
}

func parse(raw []byte) ([]domain.Release, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse changelog: %w", err)
	}

	releases := make([]domain.Release, 0, len(doc.Releases))
	for _, r := range doc.Releases {
		v := version.Normalize(r.Version)
		if !semver.IsValid(v) {
			return nil, fmt.Errorf("changelog: invalid version %q", r.Version)
		}
		date, err := biztime.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("changelog: release %s: %w", r.Version, err)
		}
		releases = append(releases, domain.Release{
			Version: v,
			Date:    date,
			Title:   r.Title,
			Body:    r.Body,
		})
	}

	sort.SliceStable(releases, func(i, j int) bool {
		return semver.Compare(releases[i].Version, releases[j].Version) > 0
	})
	return releases, nil
}
