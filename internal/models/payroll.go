package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PayrollEntry: accumulated advances for one employee over one month
// (period is yyyy-MM). Conceptually one entry per (employee, period);
// uniqueness is not enforced here because the clients resolve the pair
// by searching the fetched list. See DESIGN.md.
type PayrollEntry struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"size:36;index;not null" json:"employee_id"`
	Period     string    `gorm:"size:7;index;not null" json:"period"`
	Advances   float64   `gorm:"not null;default:0" json:"advances"`
	Paid       float64   `gorm:"not null;default:0" json:"paid"`
	Notes      string    `gorm:"size:500" json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

func (p *PayrollEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
