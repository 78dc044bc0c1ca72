// Package query provides the read-side operations every screen depends on:
// filtering, sorting, lookup, favorites projection and search. All functions
// are pure; they never mutate the slice handed to them.
package query

import (
	"sort"
	"strings"

	"github.com/business-boost/api-go/models"
)

// SortOption names one of the six supported orderings.
type SortOption string

const (
	SortRatingHigh  SortOption = "rating-high"
	SortRatingLow   SortOption = "rating-low"
	SortReviewsHigh SortOption = "reviews-high"
	SortReviewsLow  SortOption = "reviews-low"
	SortNameAsc     SortOption = "name-asc"
	SortNameDesc    SortOption = "name-desc"
)

// IsValidSortOption reports whether s names a known sort option.
func IsValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortRatingHigh, SortRatingLow, SortReviewsHigh, SortReviewsLow, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// FilterByCategory returns the businesses matching category, preserving
// relative order. An empty category is the identity filter.
func FilterByCategory(businesses []models.Business, category models.BusinessCategory) []models.Business {
	if category == "" {
		return businesses
	}
	filtered := make([]models.Business, 0, len(businesses))
	for _, b := range businesses {
		if b.Category == category {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// SortBusinesses returns a new slice ordered by the given option. The sort
// is stable: ties keep the relative order of the input. An unknown option
// returns a copy in the original order.
func SortBusinesses(businesses []models.Business, option SortOption) []models.Business {
	sorted := make([]models.Business, len(businesses))
	copy(sorted, businesses)

	switch option {
	case SortRatingHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AverageRating > sorted[j].AverageRating
		})
	case SortRatingLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AverageRating < sorted[j].AverageRating
		})
	case SortReviewsHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ReviewCount > sorted[j].ReviewCount
		})
	case SortReviewsLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ReviewCount < sorted[j].ReviewCount
		})
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessName(sorted[i].Name, sorted[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessName(sorted[j].Name, sorted[i].Name)
		})
	}

	return sorted
}

// lessName orders names case-insensitively, falling back to a byte compare
// so equal foldings still order deterministically.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// GetByID looks up a business by id.
func GetByID(businesses []models.Business, id string) (models.Business, bool) {
	for _, b := range businesses {
		if b.ID == id {
			return b, true
		}
	}
	return models.Business{}, false
}

// GetFavorites returns the subset of businesses whose id is in favoriteIDs,
// in the original business order rather than favorite-insertion order.
func GetFavorites(businesses []models.Business, favoriteIDs []string) []models.Business {
	ids := make(map[string]struct{}, len(favoriteIDs))
	for _, id := range favoriteIDs {
		ids[id] = struct{}{}
	}
	favorites := make([]models.Business, 0, len(ids))
	for _, b := range businesses {
		if _, ok := ids[b.ID]; ok {
			favorites = append(favorites, b)
		}
	}
	return favorites
}

// SearchBusinesses matches the query case-insensitively against name,
// description, address and category. An empty query matches nothing.
func SearchBusinesses(businesses []models.Business, q string) []models.Business {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []models.Business{}
	}
	matched := make([]models.Business, 0)
	for _, b := range businesses {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Description), q) ||
			strings.Contains(strings.ToLower(b.Address), q) ||
			strings.Contains(strings.ToLower(string(b.Category)), q) {
			matched = append(matched, b)
		}
	}
	return matched
}

// SortReviewsByDate orders reviews newest-first (or oldest-first), without
// mutating the input.
func SortReviewsByDate(reviews []models.Review, newestFirst bool) []models.Review {
	sorted := make([]models.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if newestFirst {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
