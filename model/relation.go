package model

import (
	"time"
)

// LikedCollege is a (user, college) like relation. The composite unique
// index is the backstop against duplicate rows under concurrent toggles.
type LikedCollege struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index:idx_liked_user_college,unique" json:"user_id"`
	CollegeID uint      `gorm:"not null;index:idx_liked_user_college,unique" json:"college_id"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LikedCollege) TableName() string { return "liked_colleges" }

// CompareCollege is a (user, college) compare-list relation. Same shape as
// LikedCollege but an independent set; a college can be in both.
type CompareCollege struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index:idx_compare_user_college,unique" json:"user_id"`
	CollegeID uint      `gorm:"not null;index:idx_compare_user_college,unique" json:"college_id"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CompareCollege) TableName() string { return "compare_colleges" }
