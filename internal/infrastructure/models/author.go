package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Author struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	FirstName string      `gorm:"type:varchar(50);not null"`
	LastName  string      `gorm:"type:varchar(50);not null"`
	Created   time.Time   `gorm:"autoCreateTime"`
	Avatar    null.String `gorm:"type:varchar(512)"`

	// Associations
	Books []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
