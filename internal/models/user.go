package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string     `gorm:"column:username;unique;not null" json:"username"`
	Email        string     `gorm:"column:email" json:"email"`
	Password     string     `gorm:"-:all" json:"-"` // Temporary field for password handling
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string     `gorm:"column:first_name" json:"first_name"`
	LastName     string     `gorm:"column:last_name" json:"last_name"`
	IsStaff      bool       `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsSuperuser  bool       `gorm:"column:is_superuser;not null;default:false" json:"is_superuser"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
