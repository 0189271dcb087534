package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog records catalog mutations (college create/delete) for the
// admin surface
type AdminAuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	AdminID    *uint          `gorm:"index" json:"admin_id,omitempty"` // nil when the actor is the env-configured admin
	Action     string         `gorm:"type:varchar(100);not null" json:"action"`
	Resource   string         `gorm:"type:varchar(100)" json:"resource"`
	ResourceID uint           `json:"resource_id"`
	Detail     datatypes.JSON `gorm:"type:jsonb" json:"detail,omitempty"`
	IPAddress  string         `gorm:"type:varchar(45)" json:"ip_address"`
}
