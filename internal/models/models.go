package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch - a physical store location
type Branch struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"size:255" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:100" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Category - a product grouping label. Name is unique across the table.
type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Color       string    `gorm:"size:30" json:"color"` // display tag, e.g. "primary", "success"
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	if cat.Color == "" {
		cat.Color = "primary"
	}
	return nil
}

// Sale - a single transaction record. Totals are supplied by the caller and
// stored verbatim; the server never recomputes them from the line items.
type Sale struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	BranchID  string     `gorm:"size:36;index;not null" json:"branchId"`
	Branch    *Branch    `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Date      time.Time  `gorm:"index;not null" json:"date"`
	Items     []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	Total     float64    `json:"total"`
	CostTotal float64    `json:"costTotal"`
	Profit    float64    `json:"profit"`
	Category  string     `gorm:"size:100" json:"category"` // free-text label, not a Category reference
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SaleItem - a line item inside a Sale
type SaleItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	SaleID    string  `gorm:"size:36;index" json:"saleId"`
	SKU       string  `gorm:"size:64" json:"sku"`
	Name      string  `gorm:"size:100" json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	UnitCost  float64 `json:"unitCost"`
}

// SettingsID is the fixed primary key of the one Settings row. The primary
// key constraint is what keeps the lazy-create idempotent under concurrent
// first access.
const SettingsID = 1

// Settings - the process-wide singleton configuration record
type Settings struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CompanyName        string    `gorm:"size:100" json:"companyName"`
	Currency           string    `gorm:"size:10" json:"currency"`
	DateFormat         string    `gorm:"size:20" json:"dateFormat"`
	ItemsPerPage       int       `json:"itemsPerPage"`
	DefaultCostPercent float64   `json:"defaultCostPercent"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DefaultSettings returns the Settings row as it looks before anyone has
// saved anything.
func DefaultSettings() Settings {
	return Settings{
		ID:                 SettingsID,
		Currency:           "PKR",
		DateFormat:         "DD/MM/YYYY",
		ItemsPerPage:       10,
		DefaultCostPercent: 70,
	}
}
