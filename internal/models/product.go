package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories used by the bakery.
const (
	CategoryViennoiserie = "viennoiserie"
	CategoryGateau       = "gâteau"
	CategoryAutre        = "autre"
)

type Product struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:30;not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	IsRecurring bool    `gorm:"not null;default:true" json:"is_recurring"`
	// Archived products are hidden from new inventories but stay
	// referenced by historical records.
	IsArchived bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryViennoiserie, CategoryGateau, CategoryAutre:
		return true
	}
	return false
}
