package model

import "time"

// Role values. Roles are stored as free-form strings; only RoleAdmin
// carries elevated privilege, everything else is an ordinary customer.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a registered customer or administrator.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	RUT          string    `json:"rut,omitempty" gorm:"size:12"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	Address      string    `json:"address,omitempty" gorm:"size:255"`
	Commune      string    `json:"commune,omitempty" gorm:"size:100"`
	Region       string    `json:"region,omitempty" gorm:"size:100"`
	Role         string    `json:"role" gorm:"size:50;default:'customer';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Cart   *Cart   `json:"-" gorm:"foreignKey:UserID"`
	Orders []Order `json:"-" gorm:"foreignKey:UserID"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
