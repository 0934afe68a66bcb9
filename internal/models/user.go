package models

// User is an admin account. Password always holds a bcrypt hash.
type User struct {
	Username string `json:"username" gorm:"primaryKey;type:varchar(100)" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255);not null"` // No json tag for security
}
