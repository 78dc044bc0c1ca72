// Package store owns the canonical application dataset. The local Store
// persists the whole snapshot as one JSON record in an embedded BadgerDB
// and keeps an in-memory copy that stays authoritative even when a persist
// fails. All mutations are read-modify-write under a single lock, so no
// two mutations interleave mid-operation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/business-boost/api-go/models"
)

// StorageKey is the single durable key holding the JSON snapshot.
const StorageKey = "businessBoostData"

// DataStore is the contract the HTTP layer depends on. The local Store and
// the remote Postgres variant both implement it.
type DataStore interface {
	Initialize(ctx context.Context) (*models.AppData, error)
	AllBusinesses() []models.Business
	GetBusiness(id string) (models.Business, bool)
	AddReview(businessID string, review models.Review) error
	ToggleFavorite(businessID string) (bool, error)
	IsFavorite(businessID string) bool
	FavoriteIDs() []string
	UpdateBusiness(businessID string, updates BusinessUpdate) error
}

// BusinessUpdate carries a partial business edit. Nil fields are left
// untouched (shallow merge).
type BusinessUpdate struct {
	Name        *string                  `json:"name"`
	Category    *models.BusinessCategory `json:"category" binding:"omitempty,oneof=food retail services"`
	Description *string                  `json:"description"`
	Address     *string                  `json:"address"`
	Phone       *string                  `json:"phone"`
}

// Store is the badger-backed local data store.
type Store struct {
	db       *badger.DB
	seedPath string

	mu   sync.Mutex
	data *models.AppData

	now func() time.Time
}

// New creates a Store over an opened badger database. seedPath may be a
// local file path or an http(s) URL; empty means DefaultSeedPath.
func New(db *badger.DB, seedPath string) *Store {
	return &Store{db: db, seedPath: seedPath, now: time.Now}
}

// Load deserializes the durable snapshot. A missing or unreadable record is
// reported as absent (nil), never as an error: callers treat absent as
// "needs initialization".
func (s *Store) Load() *models.AppData {
	var data *models.AppData
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StorageKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var parsed models.AppData
			if err := json.Unmarshal(val, &parsed); err != nil {
				return err
			}
			data = &parsed
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			log.Printf("Error loading data from store: %v", err)
		}
		return nil
	}
	return data
}

// Save serializes the snapshot under the storage key, stamping LastUpdated.
// Persist failures are recoverable: the caller keeps the in-memory copy as
// the source of truth for the rest of the session.
func (s *Store) Save(data *models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	s.data.LastUpdated = s.now()
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrStoreUnavailable, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(StorageKey), raw)
	})
	if err != nil {
		if errors.Is(err, badger.ErrTxnTooBig) {
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Initialize is the idempotent bootstrap. A valid non-empty snapshot is
// returned unchanged; otherwise the seed source is fetched once, nested
// reviews and deals are flattened into the top-level index arrays, an empty
// favorites set is created and the result persisted before returning.
func (s *Store) Initialize(ctx context.Context) (*models.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data != nil && len(s.data.Businesses) > 0 {
		return s.data, nil
	}

	if existing := s.Load(); existing != nil && len(existing.Businesses) > 0 {
		s.data = existing
		return s.data, nil
	}

	seed, err := LoadSeedData(ctx, s.seedPath)
	if err != nil {
		return nil, err
	}

	data := &models.AppData{
		Businesses: seed.Businesses,
		Reviews:    []models.Review{},
		Deals:      []models.Deal{},
		Favorites: models.UserFavorites{
			UserID:              models.DefaultUserID,
			FavoriteBusinessIDs: []string{},
		},
	}
	for i := range data.Businesses {
		b := &data.Businesses[i]
		b.RecalculateRating()
		data.Reviews = append(data.Reviews, b.Reviews...)
		data.Deals = append(data.Deals, b.Deals...)
	}

	s.data = data
	if err := s.saveLocked(); err != nil {
		// Seeded data still serves the session from memory.
		log.Printf("Warning: could not persist seeded snapshot: %v", err)
	}
	return s.data, nil
}

// Data returns the current in-memory snapshot.
func (s *Store) Data() *models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// AllBusinesses returns the current business collection.
func (s *Store) AllBusinesses() []models.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return []models.Business{}
	}
	businesses := make([]models.Business, len(s.data.Businesses))
	copy(businesses, s.data.Businesses)
	return businesses
}

// GetBusiness looks up a business by id.
func (s *Store) GetBusiness(id string) (models.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return models.Business{}, false
	}
	for _, b := range s.data.Businesses {
		if b.ID == id {
			return b, true
		}
	}
	return models.Business{}, false
}

// AddReview appends the review to the flattened index and to the matching
// business's own collection, then recomputes that business's average rating
// and review count in the same mutation. An unknown business id is a silent
// no-op. The returned error only reports persist failure; the in-memory
// mutation has already taken effect.
func (s *Store) AddReview(businessID string, review models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}

	found := false
	for i := range s.data.Businesses {
		b := &s.data.Businesses[i]
		if b.ID != businessID {
			continue
		}
		b.Reviews = append(b.Reviews, review)
		b.RecalculateRating()
		found = true
		break
	}
	if !found {
		return nil
	}

	s.data.Reviews = append(s.data.Reviews, review)
	return s.saveLocked()
}

// ToggleFavorite inserts the id into the favorites set if absent and
// removes it if present, returning the new membership state. The set is
// opaque to business validity. Toggling twice restores the prior state.
func (s *Store) ToggleFavorite(businessID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return false, nil
	}

	ids := s.data.Favorites.FavoriteBusinessIDs
	for i, id := range ids {
		if id == businessID {
			s.data.Favorites.FavoriteBusinessIDs = append(ids[:i:i], ids[i+1:]...)
			return false, s.saveLocked()
		}
	}
	s.data.Favorites.FavoriteBusinessIDs = append(ids, businessID)
	return true, s.saveLocked()
}

// IsFavorite reports membership in the current favorites set.
func (s *Store) IsFavorite(businessID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return false
	}
	for _, id := range s.data.Favorites.FavoriteBusinessIDs {
		if id == businessID {
			return true
		}
	}
	return false
}

// FavoriteIDs returns the favorites set in insertion order.
func (s *Store) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return []string{}
	}
	ids := make([]string, len(s.data.Favorites.FavoriteBusinessIDs))
	copy(ids, s.data.Favorites.FavoriteBusinessIDs)
	return ids
}

// UpdateBusiness merges the provided fields into the matching business.
// Fields left nil are untouched; an unknown id is a silent no-op.
func (s *Store) UpdateBusiness(businessID string, updates BusinessUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}

	for i := range s.data.Businesses {
		b := &s.data.Businesses[i]
		if b.ID != businessID {
			continue
		}
		if updates.Name != nil {
			b.Name = *updates.Name
		}
		if updates.Category != nil {
			b.Category = *updates.Category
		}
		if updates.Description != nil {
			b.Description = *updates.Description
		}
		if updates.Address != nil {
			b.Address = *updates.Address
		}
		if updates.Phone != nil {
			b.Phone = *updates.Phone
		}
		return s.saveLocked()
	}
	return nil
}
