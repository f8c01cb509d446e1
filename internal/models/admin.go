package models

import "gorm.io/gorm"

// Admin is a role record tying an account to one pre-shared admin code.
// A single account may hold several of these, one per code it registered with.
type Admin struct {
	gorm.Model
	UserID    uint   `gorm:"column:user_id;not null" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"-"`
	AdminCode string `gorm:"column:admin_code;not null" json:"admin_code"`
}

func (Admin) TableName() string {
	return "admins"
}
