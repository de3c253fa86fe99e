package models

// Doctor defines the structure for doctor records.
type Doctor struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	FullName  string  `json:"full_name" gorm:"size:150;not null"`
	Specialty string  `json:"specialty" gorm:"size:100;not null"`
	Phone     string  `json:"phone" gorm:"size:20;not null"`
	Email     *string `json:"email" gorm:"size:120"` // Optional field
	Room      *string `json:"room" gorm:"size:20"`   // Optional field
}
