package models

type Deal struct {
	ID          string `json:"id" gorm:"primaryKey"`
	BusinessID  string `json:"businessId" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Discount    string `json:"discount,omitempty"`
	Code        string `json:"code,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Active      bool   `json:"active" gorm:"default:true"`
}
