package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents the database model for per-category spending limits
type Budget struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;uniqueIndex:idx_budgets_user_category,priority:1"`
	Category    string          `gorm:"not null;size:100;uniqueIndex:idx_budgets_user_category,priority:2"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SpentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
