package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"preparos/internal/domain/changelog"
	"preparos/internal/domain/profile"
	"preparos/internal/shared/biztime"
	"preparos/internal/shared/errors"
	"preparos/internal/shared/logger"
	"preparos/internal/shared/services/markdown"
	"preparos/internal/shared/version"
)

type ReleaseDTO struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	HTML    string `json:"html"`
}

type ChangelogDTO struct {
	CurrentVersion string       `json:"current_version"`
	SeenVersion    string       `json:"seen_version"`
	Unseen         bool         `json:"unseen"`
	Releases       []ReleaseDTO `json:"releases"`
}

type GetChangelogQuery struct {
	UserID uuid.UUID
}

type GetChangelogUseCase struct {
	source      changelog.Source
	profileRepo profile.Repository
	renderer    markdown.MarkdownService
	logger      logger.Interface
}

func NewGetChangelogUseCase(
	source changelog.Source,
	profileRepo profile.Repository,
	renderer markdown.MarkdownService,
	logger logger.Interface,
) *GetChangelogUseCase {
	return &GetChangelogUseCase{
		source:      source,
		profileRepo: profileRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetChangelogUseCase) Execute(ctx context.Context, query GetChangelogQuery) (*ChangelogDTO, error) {
	releases, err := uc.source.Releases()
	if err != nil {
		uc.logger.Errorw("failed to load changelog", "error", err)
		return nil, err
	}

	items := make([]ReleaseDTO, 0, len(releases))
	for _, r := range releases {
		html, err := uc.renderer.ToHTMLSanitized(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to render release %s: %w", r.Version, err)
		}
		items = append(items, ReleaseDTO{
			Version: displayVersion(r.Version),
			Date:    biztime.FormatDate(r.Date),
			Title:   r.Title,
			HTML:    html,
		})
	}

	seen := ""
	p, err := uc.profileRepo.GetByUserID(ctx, query.UserID)
	switch {
	case err == nil:
		seen = p.ChangelogVersion()
	case !errors.IsNotFoundError(err):
		return nil, err
	}

	latest := changelog.Latest(releases)
	return &ChangelogDTO{
		CurrentVersion: displayVersion(latest),
		SeenVersion:    displayVersion(seen),
		Unseen:         version.HasUnseen(seen, latest),
		Releases:       items,
	}, nil
}

func displayVersion(v string) string {
	return strings.TrimPrefix(version.Normalize(v), "v")
}
