package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one purchase lot. The table is named owned for continuity with
// existing deployments of the application.
type Holding struct {
	ID     uint64          `gorm:"primaryKey;autoIncrement"`
	UserID uint64          `gorm:"not null;index:idx_owned_user_symbol,priority:1"`
	Symbol string          `gorm:"type:varchar(10);not null;index:idx_owned_user_symbol,priority:2"`
	Name   string          `gorm:"type:varchar(255);not null"`
	Shares int64           `gorm:"not null;check:chk_owned_shares_positive,shares > 0"`
	Price  decimal.Decimal `gorm:"type:numeric(20,4);not null;check:chk_owned_price_non_negative,price >= 0"`
	Date   time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Holding
func (Holding) TableName() string {
	return "owned"
}
