package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Itinerary is the durable record of one generation call. The document is
// stored whole as jsonb; it is immutable after creation except for the
// favorite flag.
type Itinerary struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	StartDate   string `gorm:"size:10"` // YYYY-MM-DD
	EndDate     string `gorm:"size:10"`
	TotalDays   int
	Travelers   int            `gorm:"default:2"`
	Document    datatypes.JSON `gorm:"type:jsonb"`
	IsFavorite  bool           `gorm:"default:false"`
}
