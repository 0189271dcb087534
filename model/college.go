package model

import (
	"time"
)

// College represents an institution in the catalog
type College struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"type:varchar(200);not null;index" json:"college_name"`
	Address    string    `gorm:"type:varchar(300)" json:"address"`
	About      string    `gorm:"type:text" json:"about"`
	Stream     string    `gorm:"type:varchar(100)" json:"stream"`
	PriceRange string    `gorm:"type:varchar(100)" json:"price_range"`
	ImageData  []byte    `gorm:"type:bytea" json:"-"`
	ImageMime  string    `gorm:"type:varchar(50)" json:"-"`

	// Relationships
	Courses    []Course         `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	LikedBy    []LikedCollege   `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
	ComparedBy []CompareCollege `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
}

// HasImage reports whether the college has stored image bytes
func (c *College) HasImage() bool {
	return len(c.ImageData) > 0
}
