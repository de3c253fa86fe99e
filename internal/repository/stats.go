package repository

import (
	"time"

	"clinic-admin/internal/models"

	"gorm.io/gorm"
)

// Stats holds the dashboard counters.
type Stats struct {
	Patients          int64 `json:"patients"`
	Doctors           int64 `json:"doctors"`
	Appointments      int64 `json:"appointments"`
	TodayAppointments int64 `json:"today_appointments"`
}

// StatsRepository answers the dashboard count queries.
type StatsRepository struct {
	db           *gorm.DB
	appointments *AppointmentRepository
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db, appointments: NewAppointmentRepository(db)}
}

// Collect gathers the dashboard counters. "Today" is the calendar date of
// now in server-local time.
func (r *StatsRepository) Collect(now time.Time) (*Stats, error) {
	var stats Stats
	if err := r.db.Model(&models.Patient{}).Count(&stats.Patients).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Doctor{}).Count(&stats.Doctors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Appointment{}).Count(&stats.Appointments).Error; err != nil {
		return nil, err
	}

	today, err := r.appointments.CountOnDate(now)
	if err != nil {
		return nil, err
	}
	stats.TodayAppointments = today
	return &stats, nil
}
