package entity

import "time"

// InstitutionalDomain is the email suffix sellers must register and
// log in with. A single rule enforced in the authenticator.
const InstitutionalDomain = "@edu.com"

// Seller is a principal space disjoint from User: the same email may
// exist in both collections with different semantics.
type Seller struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	Phone           string    `json:"phone"`
	InstitutionName string    `json:"institutionName"`
	Address         string    `json:"address"`
	ProfileImage    string    `json:"profileImage"`
	IsVerified      bool      `json:"isVerified"`
	IsActive        bool      `json:"isActive"`
	TotalCourses    int       `json:"totalCourses"`
	TotalProducts   int       `json:"totalProducts"`
	TotalRevenue    float64   `json:"totalRevenue"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
