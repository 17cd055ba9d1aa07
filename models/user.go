package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PublicID  string `gorm:"uniqueIndex;size:36"`
	Email     string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	HeightCm  float64
	Disabled  bool `gorm:"default:false"` // disabled users are skipped by the bulk rollup
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PublicID == "" {
		u.PublicID = uuid.NewString()
	}
	return nil
}
