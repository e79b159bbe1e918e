package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account of the identity store tokens are issued against.
type User struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Username  string      `json:"username" gorm:"type:varchar(150);uniqueIndex;not null"`
	Password  string      `json:"-" gorm:"not null"`
	IsActive  bool        `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Tokens    []UserToken `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
