package entity

import "time"

type Product struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Name          string    `json:"name"`
	AuthorName    string    `json:"authorName"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
