package models

import "time"

// Patient defines the structure for patient records.
type Patient struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FullName  string     `json:"full_name" gorm:"size:150;not null"`
	Phone     string     `json:"phone" gorm:"size:20;not null"`
	Email     *string    `json:"email" gorm:"size:120"` // Optional field
	BirthDate *time.Time `json:"birth_date"`            // Optional, date component only
	Address   *string    `json:"address" gorm:"type:text"`
}
