package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Journal struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"size:200"`
	Destination string    `gorm:"index"`
	TripDate    time.Time
	Notes       string         `gorm:"type:text"`
	Images      pq.StringArray `gorm:"type:text[]"`
	IsPublic    bool           `gorm:"default:false;index"`
}
