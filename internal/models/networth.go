package models

import (
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// NetWorthSample is a point-in-time record of a user's assets and
// liabilities.
//
// History is append-only: samples accumulate without deduplication by
// period.
type NetWorthSample struct {
	DefaultModel
	UserID    uint            `json:"userId" gorm:"index"`
	User      User            `json:"-"`
	Asset     decimal.Decimal `json:"asset" gorm:"type:DECIMAL(20,8)"`
	Liability decimal.Decimal `json:"liability" gorm:"type:DECIMAL(20,8)"`
	Period    types.Period    `json:"period"`
}

// BeforeSave defaults the period to the current month.
func (s *NetWorthSample) BeforeSave(_ *gorm.DB) error {
	if s.Period.IsZero() {
		s.Period = types.CurrentPeriod()
	}

	return nil
}

// NetWorth returns the asset total minus the liability total.
func (s NetWorthSample) NetWorth() decimal.Decimal {
	return s.Asset.Sub(s.Liability)
}

// NetWorthHistoryForUser returns all net worth samples of the user in
// append order.
func NetWorthHistoryForUser(userID uint) ([]NetWorthSample, error) {
	var samples []NetWorthSample
	err := DB.Where(&NetWorthSample{UserID: userID}).Order("id ASC").Find(&samples).Error
	return samples, err
}
