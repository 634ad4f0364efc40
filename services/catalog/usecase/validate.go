package usecase

import (
	"strings"

	"github.com/redtestlab/portal/internal/pkg/apperrors"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/internal/utils"
)

// Validate checks a catalog item before it is sent anywhere
func Validate(item *models.CatalogItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return apperrors.Validation("Name is required")
	}
	// the lab API stores the category by id only
	if strings.TrimSpace(item.Category.ID) == "" {
		return apperrors.Validation("Category is required")
	}
	if item.Type != "" && item.Type != models.CatalogPackage && item.Type != models.CatalogTest {
		return apperrors.Validation("Type must be PACKAGE or TEST")
	}
	if item.Price < 0 {
		return apperrors.Validation("Price cannot be negative")
	}
	if item.DiscountedPrice < 0 || item.DiscountedPrice > item.Price {
		return apperrors.Validation("Discounted price must be between 0 and the price")
	}
	return nil
}

// Filter keeps the items whose name, any tag or category name contains
// term, ignoring case. An empty term keeps everything.
func Filter(items []*models.CatalogItem, term string) []*models.CatalogItem {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}

	matched := make([]*models.CatalogItem, 0, len(items))
	for _, item := range items {
		if matches(item, term) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matches(item *models.CatalogItem, term string) bool {
	if utils.ContainsFold(item.Name, term) || utils.ContainsFold(item.Category.Name, term) {
		return true
	}
	for _, tag := range item.Tags {
		if utils.ContainsFold(tag, term) {
			return true
		}
	}
	return false
}

// normalizeItem trims the free-text fields of an item in place
func normalizeItem(item *models.CatalogItem) {
	item.Name = utils.SanitizeString(item.Name)
	item.Category.Name = strings.TrimSpace(item.Category.Name)
	item.Type = models.CatalogType(strings.ToUpper(string(item.Type)))

	tags := item.Tags[:0]
	for _, tag := range item.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	item.Tags = tags
}
