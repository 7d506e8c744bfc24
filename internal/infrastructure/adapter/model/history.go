package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// History is an immutable record of a buy or sell
type History struct {
	ID     uint64          `gorm:"primaryKey;autoIncrement"`
	UserID uint64          `gorm:"not null;index:idx_history_user_date,priority:1"`
	Action string          `gorm:"type:varchar(4);not null;check:chk_history_action,action IN ('buy','sell')"`
	Symbol string          `gorm:"type:varchar(10);not null"`
	Shares int64           `gorm:"not null;check:chk_history_shares_positive,shares > 0"`
	Price  decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Date   time.Time       `gorm:"not null;index:idx_history_user_date,priority:2,sort:desc"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for History
func (History) TableName() string {
	return "history"
}
