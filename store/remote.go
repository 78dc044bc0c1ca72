package store

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/business-boost/api-go/models"
)

// RemoteStore serves the same DataStore contract from a shared Postgres
// database, with the local badger Store as offline cache and fallback.
// Remote wins whenever it is reachable: successful reads refresh the local
// cache and writes go remote first, then mirror locally. Favorites stay
// local-only — they belong to the single implicit user of this device, not
// to the shared dataset.
type RemoteStore struct {
	DB    *gorm.DB
	Local *Store
}

// NewRemoteStore wires a remote store over an open gorm connection.
func NewRemoteStore(db *gorm.DB, local *Store) *RemoteStore {
	return &RemoteStore{DB: db, Local: local}
}

// Migrate creates the remote schema for the business domain tables.
func (rs *RemoteStore) Migrate() error {
	return rs.DB.AutoMigrate(&models.Business{}, &models.Review{}, &models.Deal{})
}

// Initialize bootstraps both sides: the local store seeds itself if empty,
// and an empty remote database is populated from the local snapshot so
// both sources agree on first run.
func (rs *RemoteStore) Initialize(ctx context.Context) (*models.AppData, error) {
	data, err := rs.Local.Initialize(ctx)
	if err != nil {
		return nil, err
	}

	if err := rs.Migrate(); err != nil {
		log.Printf("Warning: remote migration failed, serving local data: %v", err)
		return data, nil
	}

	var count int64
	if err := rs.DB.WithContext(ctx).Model(&models.Business{}).Count(&count).Error; err != nil {
		log.Printf("Warning: remote unreachable, serving local data: %v", err)
		return data, nil
	}

	if count == 0 {
		for i := range data.Businesses {
			if err := rs.DB.WithContext(ctx).Create(&data.Businesses[i]).Error; err != nil {
				log.Printf("Warning: could not push seed business %s: %v", data.Businesses[i].ID, err)
			}
		}
		return data, nil
	}

	rs.refreshCache(rs.fetchAll(ctx))
	return rs.Local.Data(), nil
}

// fetchAll loads the remote business collection with nested reviews and
// deals and recomputes the derived rating fields. Returns nil when the
// remote side cannot be read.
func (rs *RemoteStore) fetchAll(ctx context.Context) []models.Business {
	var businesses []models.Business
	err := rs.DB.WithContext(ctx).
		Preload("Reviews").
		Preload("Deals").
		Order("created_at").
		Find(&businesses).Error
	if err != nil {
		log.Printf("Error fetching businesses from remote: %v", err)
		return nil
	}
	for i := range businesses {
		businesses[i].RecalculateRating()
	}
	return businesses
}

// refreshCache replaces the cached business collection with the remote
// one, preserving the local favorites set.
func (rs *RemoteStore) refreshCache(businesses []models.Business) {
	if businesses == nil {
		return
	}
	data := rs.Local.Data()
	if data == nil {
		return
	}
	fresh := &models.AppData{
		Businesses: businesses,
		Reviews:    []models.Review{},
		Deals:      []models.Deal{},
		Favorites:  data.Favorites,
	}
	for i := range fresh.Businesses {
		b := &fresh.Businesses[i]
		fresh.Reviews = append(fresh.Reviews, b.Reviews...)
		fresh.Deals = append(fresh.Deals, b.Deals...)
	}
	if err := rs.Local.Save(fresh); err != nil {
		log.Printf("Warning: could not cache remote data locally: %v", err)
	}
}

// AllBusinesses reads from the remote database, falling back to the local
// cache when it is unreachable.
func (rs *RemoteStore) AllBusinesses() []models.Business {
	if businesses := rs.fetchAll(context.Background()); businesses != nil {
		rs.refreshCache(businesses)
		return businesses
	}
	return rs.Local.AllBusinesses()
}

// GetBusiness looks up one business remotely, falling back to the cache.
func (rs *RemoteStore) GetBusiness(id string) (models.Business, bool) {
	var business models.Business
	err := rs.DB.
		Preload("Reviews").
		Preload("Deals").
		Where("id = ?", id).
		First(&business).Error
	if err == nil {
		business.RecalculateRating()
		return business, true
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Error fetching business %s from remote: %v", id, err)
		return rs.Local.GetBusiness(id)
	}
	return models.Business{}, false
}

// AddReview writes the review remotely first, then mirrors it into the
// local cache. When the remote write fails the review still lands locally
// so the session stays consistent offline.
func (rs *RemoteStore) AddReview(businessID string, review models.Review) error {
	if err := rs.DB.Create(&review).Error; err != nil {
		log.Printf("Warning: remote review write failed, keeping local copy: %v", err)
	}
	return rs.Local.AddReview(businessID, review)
}

// ToggleFavorite operates on the device-local favorites set.
func (rs *RemoteStore) ToggleFavorite(businessID string) (bool, error) {
	return rs.Local.ToggleFavorite(businessID)
}

// IsFavorite operates on the device-local favorites set.
func (rs *RemoteStore) IsFavorite(businessID string) bool {
	return rs.Local.IsFavorite(businessID)
}

// FavoriteIDs operates on the device-local favorites set.
func (rs *RemoteStore) FavoriteIDs() []string {
	return rs.Local.FavoriteIDs()
}

// UpdateBusiness applies the partial edit remotely, then mirrors it into
// the local cache. Unknown ids remain a silent no-op on both sides.
func (rs *RemoteStore) UpdateBusiness(businessID string, updates BusinessUpdate) error {
	fields := map[string]interface{}{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Category != nil {
		fields["category"] = *updates.Category
	}
	if updates.Description != nil {
		fields["description"] = *updates.Description
	}
	if updates.Address != nil {
		fields["address"] = *updates.Address
	}
	if updates.Phone != nil {
		fields["phone"] = *updates.Phone
	}
	if len(fields) > 0 {
		if err := rs.DB.Model(&models.Business{}).Where("id = ?", businessID).Updates(fields).Error; err != nil {
			log.Printf("Warning: remote business update failed, keeping local copy: %v", err)
		}
	}
	return rs.Local.UpdateBusiness(businessID, updates)
}
