package service

import "github.com/aussiebroadwan/tabtodo/internal/todo/domain"

// NewPage validates offset paging. limit 0 selects the default and anything
// above the cap is clamped.
func NewPage(skip, limit int64) (domain.Page, error) {
	if skip < 0 {
		return domain.Page{}, invalid("skip must not be negative")
	}
	if limit < 0 {
		return domain.Page{}, invalid("limit must not be negative")
	}

	if limit == 0 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	return domain.Page{Skip: skip, Limit: limit}, nil
}
