package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all models in the Centsible backend.
type DefaultModel struct {
	ID        uint           `json:"id" example:"42"`
	CreatedAt time.Time      `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	UpdatedAt time.Time      `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
