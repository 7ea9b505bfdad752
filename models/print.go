package models

import "time"

// Image source kinds for a print artwork.
const (
	ImageTypeURL   = "url"
	ImageTypeLocal = "local"
)

type Print struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Technique string     `json:"technique"` // Silk Screen, DTG, Transfer
	Colors    string     `json:"colors"`    // "1", "2", "Full Color"
	ImageURL  string     `json:"imageUrl" gorm:"column:image_url"`
	ImageType string     `json:"imageType" gorm:"default:'url'"`
	Tags      StringList `json:"tags" gorm:"type:json"`
	CreatedAt time.Time  `json:"createdAt"`
}
