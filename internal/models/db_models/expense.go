package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	BaseModel
	AccountID     uuid.UUID  `gorm:"type:uuid;index"`
	TripID        *uuid.UUID `gorm:"type:uuid;index"`
	Title         string
	SpentBy       string
	Amount        float64
	Category      string `gorm:"index"`
	Description   string
	Date          time.Time `gorm:"index:,sort:desc"`
	Currency      string    `gorm:"size:3;default:INR"`
	PaymentMethod string    `gorm:"default:card"` // cash | card | upi | other

	Trip *Trip
}

// ExpenseCategories mirrors the category enum the expense form offers.
var ExpenseCategories = []string{
	"Accommodation",
	"Food & Dining",
	"Transportation",
	"Activities & Entertainment",
	"Shopping",
	"Miscellaneous",
}

func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
