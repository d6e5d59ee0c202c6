package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index:idx_trips_account_start"`
	Name        string
	Destination string
	StartDate   time.Time `gorm:"index:idx_trips_account_start,sort:desc"`
	EndDate     time.Time
	Budget      float64
	Currency    string `gorm:"size:3;default:INR"`
	Status      string `gorm:"default:planned"` // planned | ongoing | completed
	Description string

	Expenses []Expense
}
