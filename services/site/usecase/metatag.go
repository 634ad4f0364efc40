package usecase

import (
	"context"
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

func (uc *SiteUC) ListMetaTags(ctx context.Context) ([]*models.MetaTag, error) {
	return uc.siteGW.ListMetaTags(ctx, false)
}

// GetMetaTag returns the public tags of page
func (uc *SiteUC) GetMetaTag(ctx context.Context, page string) (*models.MetaTag, error) {
	page = strings.TrimSpace(page)
	if page == "" {
		return nil, apperrors.Validation("Page is required")
	}

	tags, err := uc.siteGW.ListMetaTags(ctx, true)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if strings.EqualFold(tag.Page, page) {
			return tag, nil
		}
	}
	return nil, apperrors.NotFound("No meta tags for page %s", page)
}

func (uc *SiteUC) CreateMetaTag(ctx context.Context, tag *models.MetaTag) (*models.MetaTag, error) {
	if err := validateMetaTag(tag); err != nil {
		return nil, err
	}
	return uc.siteGW.CreateMetaTag(ctx, tag)
}

func (uc *SiteUC) UpdateMetaTag(ctx context.Context, id string, tag *models.MetaTag) (*models.MetaTag, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.Validation("Missing id")
	}
	if err := validateMetaTag(tag); err != nil {
		return nil, err
	}
	return uc.siteGW.UpdateMetaTag(ctx, id, tag)
}

func (uc *SiteUC) DeleteMetaTag(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("Missing id")
	}
	return uc.siteGW.DeleteMetaTag(ctx, id)
}

func validateMetaTag(tag *models.MetaTag) error {
	tag.Page = strings.ToLower(strings.TrimSpace(tag.Page))
	tag.Title = utils.SanitizeString(tag.Title)
	tag.Description = utils.SanitizeString(tag.Description)
	tag.Keywords = utils.SanitizeString(tag.Keywords)

	if tag.Page == "" {
		return apperrors.Validation("Page is required")
	}
	if tag.Title == "" {
		return apperrors.Validation("Title is required")
	}
	return nil
}
