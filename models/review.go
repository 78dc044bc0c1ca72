package models

import (
	"time"
)

type Review struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	BusinessID string    `json:"businessId" gorm:"index;not null"`
	UserName   string    `json:"userName" gorm:"not null"`
	Rating     int       `json:"rating" gorm:"not null;check:rating between 1 and 5"`
	Comment    string    `json:"comment" gorm:"type:text;not null"`
	Date       time.Time `json:"date"`
	Verified   bool      `json:"verified" gorm:"default:false"`
}
