package models

import (
	"time"
)

// BusinessCategory is the fixed category enum for listings.
type BusinessCategory string

const (
	CategoryFood     BusinessCategory = "food"
	CategoryRetail   BusinessCategory = "retail"
	CategoryServices BusinessCategory = "services"
)

// Categories lists every valid business category.
var Categories = []BusinessCategory{CategoryFood, CategoryRetail, CategoryServices}

// CategoryNames maps categories to their display labels.
var CategoryNames = map[BusinessCategory]string{
	CategoryFood:     "Food & Dining",
	CategoryRetail:   "Retail & Shopping",
	CategoryServices: "Services",
}

// IsValidCategory reports whether s names a known category.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

type Business struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"not null"`
	Category    BusinessCategory `json:"category" gorm:"type:varchar(32);not null"`
	Description string           `json:"description" gorm:"type:text"`
	Address     string           `json:"address" gorm:"not null"`
	Phone       string           `json:"phone,omitempty"`
	Deals       []Deal           `json:"deals" gorm:"foreignKey:BusinessID"`
	Reviews     []Review         `json:"reviews" gorm:"foreignKey:BusinessID"`

	// AverageRating and ReviewCount are derived from Reviews and are
	// recomputed on every review write. They are never set directly.
	AverageRating float64 `json:"averageRating" gorm:"-"`
	ReviewCount   int     `json:"reviewCount" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// RecalculateRating refreshes the derived rating fields from the owned
// review collection. An empty collection yields a 0 average.
func (b *Business) RecalculateRating() {
	b.ReviewCount = len(b.Reviews)
	if b.ReviewCount == 0 {
		b.AverageRating = 0
		return
	}
	total := 0.0
	for _, r := range b.Reviews {
		total += float64(r.Rating)
	}
	b.AverageRating = total / float64(b.ReviewCount)
}

// ActiveDealCount counts deals currently flagged active. Expiry is a
// separate data-entry flag and is intentionally not enforced here.
func (b *Business) ActiveDealCount() int {
	n := 0
	for _, d := range b.Deals {
		if d.Active {
			n++
		}
	}
	return n
}
