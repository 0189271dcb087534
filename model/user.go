package model

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"type:varchar(100);not null;index" json:"username"`
	Email        string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string    `gorm:"type:varchar(20);default:'student'" json:"role"` // student, admin

	// Relationships
	LikedColleges   []LikedCollege   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CompareColleges []CompareCollege `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AuditLogs       []AdminAuditLog  `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
}
