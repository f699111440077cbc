package models

// User is an account holder. Password always stores a bcrypt hash,
// never the submitted plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:150;uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Active   bool   `gorm:"not null;default:true"`
}

func (u *User) TableName() string {
	return "users"
}

// UserProfile holds optional extended attributes for an account.
// At most one profile exists per user.
type UserProfile struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"uniqueIndex;not null"`
	User    User   `gorm:"foreignKey:UserID"`
	Website string
	Picture string
}

func (p *UserProfile) TableName() string {
	return "user_profiles"
}
