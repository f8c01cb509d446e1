package models

import "gorm.io/gorm"

// AuthToken is the persistent bearer token for an account. Login issues one
// and reuses it on subsequent logins; logout deletes the row, which revokes
// the token even before its signature expires.
type AuthToken struct {
	gorm.Model
	UserID uint   `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Key    string `gorm:"column:key;uniqueIndex;not null" json:"-"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
