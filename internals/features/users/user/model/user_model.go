package model

import "time"

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// HasEmail reports whether a contact address is set.
func (u *UserModel) HasEmail() bool {
	return u != nil && u.Email != nil && *u.Email != ""
}
