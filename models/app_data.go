package models

import (
	"time"
)

// DefaultUserID identifies the single implicit local user that owns the
// favorites set. There is no multi-user model.
const DefaultUserID = "default-user"

// UserFavorites tracks which businesses the local user has favorited.
type UserFavorites struct {
	UserID              string   `json:"userId"`
	FavoriteBusinessIDs []string `json:"favoriteBusinessIds"`
}

// AppData is the complete durable snapshot persisted under a single key.
// The top-level Reviews and Deals slices are a flattened index mirroring
// the collections nested under each business; every write path keeps the
// two forms in sync within the same mutation.
type AppData struct {
	Businesses  []Business    `json:"businesses"`
	Reviews     []Review      `json:"reviews"`
	Deals       []Deal        `json:"deals"`
	Favorites   UserFavorites `json:"favorites"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// SeedData is the shape of the bundled first-run dataset: businesses with
// their reviews and deals pre-populated inline.
type SeedData struct {
	Businesses []Business `json:"businesses"`
}
