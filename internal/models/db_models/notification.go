package db_models

import "github.com/google/uuid"

type Notification struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index:idx_notifications_account_read"`
	Title     string
	Message   string
	Type      string `gorm:"default:general"` // trip | expense | itinerary | system | general
	Read      bool   `gorm:"default:false;index:idx_notifications_account_read"`
	RelatedID *uuid.UUID `gorm:"type:uuid"`
}
