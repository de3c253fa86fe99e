package models

// AdminUser defines the structure for back-office administrator accounts.
type AdminUser struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:128;not null"`
}

// TableName keeps the table name aligned with the existing schema.
func (AdminUser) TableName() string {
	return "admin_users"
}
