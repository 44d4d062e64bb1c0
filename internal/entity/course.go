package entity

import "time"

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

func ValidLevel(level string) bool {
	switch CourseLevel(level) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID               string      `json:"_id"`
	Title            string      `json:"title"`
	Name             string      `json:"name"`
	AuthorName       string      `json:"authorName"`
	Description      string      `json:"description"`
	Price            float64     `json:"price"`
	OriginalPrice    float64     `json:"originalPrice"`
	Category         string      `json:"category"`
	Image            string      `json:"image"`
	Duration         string      `json:"duration"`
	Level            CourseLevel `json:"level"`
	EnrolledStudents int         `json:"enrolledStudents"`
	CreatedBy        string      `json:"createdBy"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
