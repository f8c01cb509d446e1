package models

import (
	"errors"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Passenger is the profile record created alongside a user account at
// registration time. One per account.
type Passenger struct {
	gorm.Model
	UserID        uint   `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	User          User   `gorm:"foreignKey:UserID" json:"user"`
	ContactNumber string `gorm:"column:contact_number;not null" json:"contact_number"`
	Gender        Gender `gorm:"column:gender;not null" json:"gender"`
	Address       string `gorm:"column:address;not null" json:"address"`
}

func (Passenger) TableName() string {
	return "passengers"
}

func (p *Passenger) Validate() error {
	if p.ContactNumber == "" {
		return errors.New("contact_number is required")
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale && p.Gender != GenderOther {
		return errors.New("gender must be M, F or O")
	}
	if p.Address == "" {
		return errors.New("address is required")
	}
	return nil
}
