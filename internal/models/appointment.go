package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every valid status, in display order.
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusScheduled, StatusCompleted, StatusCancelled}
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment defines the structure for scheduled appointments.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	PatientID       uint              `json:"patient_id" gorm:"index;not null"`
	DoctorID        uint              `json:"doctor_id" gorm:"index;not null"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null;index"`
	Status          AppointmentStatus `json:"status" gorm:"size:20;default:'scheduled'"`
}
