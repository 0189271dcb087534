package model

import (
	"time"
)

// Course categories and the exact number of semester fees each requires.
const (
	CategoryUG          = "UG"
	CategoryPG          = "PG"
	CategoryEngineering = "Engineering"
)

// CategorySemesters maps a course category to its required semester-fee count
var CategorySemesters = map[string]int{
	CategoryPG:          4,
	CategoryUG:          6,
	CategoryEngineering: 8,
}

// Course represents a program offered by a college
type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CollegeID uint      `gorm:"not null;index" json:"college_id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"course_name"`
	// About is unbounded text. An earlier schema capped it at 500 characters
	// and truncated real descriptions; keep it text.
	About    string `gorm:"type:text" json:"course_about"`
	Category string `gorm:"type:varchar(100)" json:"category"`

	Sem1Fee *float64 `json:"sem1_fee"`
	Sem2Fee *float64 `json:"sem2_fee"`
	Sem3Fee *float64 `json:"sem3_fee"`
	Sem4Fee *float64 `json:"sem4_fee"`
	Sem5Fee *float64 `json:"sem5_fee"`
	Sem6Fee *float64 `json:"sem6_fee"`
	Sem7Fee *float64 `json:"sem7_fee"`
	Sem8Fee *float64 `json:"sem8_fee"`

	// Relationships
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
}

// SemesterFees returns the 8 fee slots in semester order, unset slots nil
func (c *Course) SemesterFees() []*float64 {
	return []*float64{c.Sem1Fee, c.Sem2Fee, c.Sem3Fee, c.Sem4Fee, c.Sem5Fee, c.Sem6Fee, c.Sem7Fee, c.Sem8Fee}
}

// IsValidCategory reports whether category is one of the known course categories
func IsValidCategory(category string) bool {
	_, ok := CategorySemesters[category]
	return ok
}
