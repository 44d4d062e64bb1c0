package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID            string  `gorm:"type:uuid;primary_key"`
	Title         string  `gorm:"not null"`
	Name          string  `gorm:"not null"`
	AuthorName    string  `gorm:"not null"`
	Description   string  `gorm:"not null"`
	Price         float64 `gorm:"not null;check:price >= 0"`
	OriginalPrice float64 `gorm:"not null;check:original_price >= 0"`
	Category      string  `gorm:"not null;index"`
	Image         string  `gorm:"not null"`
	CreatedBy     string  `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
