package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	ID               string  `gorm:"type:uuid;primary_key"`
	Title            string  `gorm:"not null"`
	Name             string  `gorm:"not null"`
	AuthorName       string  `gorm:"not null"`
	Description      string  `gorm:"not null"`
	Price            float64 `gorm:"not null;check:price >= 0"`
	OriginalPrice    float64 `gorm:"not null;check:original_price >= 0"`
	Category         string  `gorm:"not null;index"`
	Image            string  `gorm:"not null"`
	Duration         string  `gorm:"default:'Self-paced'"`
	Level            string  `gorm:"type:varchar(20);default:'Beginner';index"`
	EnrolledStudents int     `gorm:"default:0"`
	CreatedBy        string  `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
