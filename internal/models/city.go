package models

import (
	"errors"

	"gorm.io/gorm"
)

type CityStatus string

const (
	CityStatusActive   CityStatus = "active"
	CityStatusInactive CityStatus = "inactive"
)

type City struct {
	gorm.Model
	Name        string     `gorm:"column:name;not null" json:"name"`
	AirportName string     `gorm:"column:airport_name;not null" json:"airport_name"`
	AirportCode string     `gorm:"column:airport_code;not null" json:"airport_code"`
	Status      CityStatus `gorm:"column:status;not null;default:active" json:"status"`
}

func (City) TableName() string {
	return "cities"
}

func (c *City) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.AirportName == "" {
		return errors.New("airport_name is required")
	}
	if c.AirportCode == "" {
		return errors.New("airport_code is required")
	}
	if c.Status != CityStatusActive && c.Status != CityStatusInactive {
		return errors.New("status must be active or inactive")
	}
	return nil
}
