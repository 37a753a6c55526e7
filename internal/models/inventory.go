package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryLine: one product's counters within a single day's inventory.
// Name, category and price are snapshots taken when the product was added,
// so archiving or re-pricing a product never rewrites history.
type InventoryLine struct {
	ID                uint    `gorm:"primaryKey" json:"-"`
	InventoryID       string  `gorm:"size:36;index;not null" json:"-"`
	ProductID         string  `gorm:"size:36;not null" json:"product_id"`
	ProductName       string  `gorm:"size:100;not null" json:"product_name"`
	Category          string  `gorm:"size:30;not null" json:"category"`
	QuantityProduced  int     `gorm:"not null;default:0" json:"quantity_produced"`
	QuantitySold      int     `gorm:"not null;default:0" json:"quantity_sold"`
	QuantityWasted    int     `gorm:"not null;default:0" json:"quantity_wasted"`
	QuantityRemaining int     `gorm:"not null;default:0" json:"quantity_remaining"`
	Price             float64 `gorm:"not null" json:"price"`
	Position          int     `gorm:"not null;default:0" json:"-"` // keeps the list order stable
}

// DailyInventory: one record per calendar date (yyyy-MM-dd).
type DailyInventory struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	Date         string          `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Lines        []InventoryLine `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE" json:"products"`
	TotalRevenue float64         `gorm:"not null;default:0" json:"total_revenue"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (i *DailyInventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Revenue is always derived server-side: Σ sold × price over the lines.
func (i *DailyInventory) Revenue() float64 {
	var total float64
	for _, l := range i.Lines {
		total += float64(l.QuantitySold) * l.Price
	}
	return total
}
