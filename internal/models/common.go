package models

import "time"

// BaseModel uses numeric auto-increment primary keys. Feed pagination relies
// on id ordering matching insertion order.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
