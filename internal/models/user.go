package models

import (
	"gorm.io/datatypes"
)

// User holds the personal data tracked for every account. The ID is
// assigned by the database on first save; a zero ID means the user has
// not been persisted yet.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"column:first_name;size:100;not null" json:"firstName"`
	LastName  string         `gorm:"column:last_name;size:100;not null" json:"lastName"`
	Birthdate datatypes.Date `gorm:"column:birthdate;not null" json:"birthdate"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
}

func (User) TableName() string { return "users" }

// NewUser constructs an unpersisted user.
func NewUser(firstName, lastName string, birthdate datatypes.Date, email string) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Birthdate: birthdate,
		Email:     email,
	}
}
