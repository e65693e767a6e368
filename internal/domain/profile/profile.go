package profile

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"preparos/internal/shared/biztime"
)

const maxFullNameLength = 255

// Theme is the colour scheme preference of a user.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Profile is keyed by the identity's user id and owned by that user.
type Profile struct {
	userID           uuid.UUID
	fullName         string
	theme            Theme
	changelogVersion string
	updatedAt        time.Time
}

func NewProfile(userID uuid.UUID, fullName string, theme Theme) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	p := &Profile{userID: userID, theme: ThemeSystem}
	if err := p.Update(fullName, theme); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructProfile(userID uuid.UUID, fullName string, theme Theme, changelogVersion string, updatedAt time.Time) *Profile {
	if !theme.IsValid() {
		theme = ThemeSystem
	}
	return &Profile{
		userID:           userID,
		fullName:         fullName,
		theme:            theme,
		changelogVersion: changelogVersion,
		updatedAt:        updatedAt,
	}
}

// Update sets the name and, when given, the theme.
func (p *Profile) Update(fullName string, theme Theme) error {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return fmt.Errorf("full name is required")
	}
	if utf8.RuneCountInString(name) > maxFullNameLength {
		return fmt.Errorf("full name exceeds maximum length of %d characters", maxFullNameLength)
	}
	if theme != "" && !theme.IsValid() {
		return fmt.Errorf("invalid theme %q", theme)
	}
	p.fullName = name
	if theme != "" {
		p.theme = theme
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

// AcknowledgeChangelog records the last changelog version the user has seen.
func (p *Profile) AcknowledgeChangelog(version string) {
	p.changelogVersion = version
	p.updatedAt = biztime.NowUTC()
}

// IsComplete reports whether the profile unlocks the data routes.
func (p *Profile) IsComplete() bool {
	return strings.TrimSpace(p.fullName) != ""
}

func (p *Profile) UserID() uuid.UUID { return p.userID }
func (p *Profile) FullName() string { return p.fullName }
func (p *Profile) Theme() Theme { return p.theme }
func (p *Profile) ChangelogVersion() string { return p.changelogVersion }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }
