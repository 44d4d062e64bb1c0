package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerModel struct {
	ID              string `gorm:"type:uuid;primary_key"`
	Name            string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	Phone           string `gorm:"not null"`
	InstitutionName string `gorm:"not null"`
	Address         string
	ProfileImage    string    `gorm:"type:varchar(500);default:''"`
	IsVerified      bool      `gorm:"default:false"`
	IsActive        bool      `gorm:"default:true"`
	TotalCourses    int       `gorm:"default:0"`
	TotalProducts   int       `gorm:"default:0"`
	TotalRevenue    float64   `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (SellerModel) TableName() string {
	return "sellers"
}

func (s *SellerModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
