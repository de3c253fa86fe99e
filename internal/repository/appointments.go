package repository

import (
	"errors"
	"time"

	"clinic-admin/internal/models"

	"gorm.io/gorm"
)

// AppointmentRow is an appointment joined with the names shown in list views.
type AppointmentRow struct {
	models.Appointment
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`
}

// AppointmentRepository provides queries over appointments.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// List returns one page of appointments ordered by appointment date, most
// recent first, with patient and doctor names resolved by an explicit join.
func (r *AppointmentRepository) List(page, pageSize int) ([]AppointmentRow, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AppointmentRow
	offset := (page - 1) * pageSize
	err := r.db.Model(&models.Appointment{}).
		Select("appointments.*, patients.full_name AS patient_name, doctors.full_name AS doctor_name, doctors.specialty AS doctor_specialty").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Order("appointments.appointment_date DESC").
		Offset(offset).Limit(pageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListForPatient returns every appointment referencing the given patient,
// most recent first.
func (r *AppointmentRepository) ListForPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListForDoctor returns every appointment referencing the given doctor,
// most recent first.
func (r *AppointmentRepository) ListForDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Get returns the appointment with the given id.
func (r *AppointmentRepository) Get(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// Create inserts a new appointment after verifying, inside one transaction,
// that the referenced patient and doctor exist.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, appointment); err != nil {
			return err
		}
		return tx.Create(appointment).Error
	})
}

// Update saves changes to an existing appointment, re-verifying references.
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, appointment); err != nil {
			return err
		}
		return tx.Save(appointment).Error
	})
}

// Delete removes the appointment unconditionally.
func (r *AppointmentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func checkReferences(tx *gorm.DB, appointment *models.Appointment) error {
	if appointment.Status != "" && !appointment.Status.Valid() {
		return ErrInvalidStatus
	}

	var count int64
	if err := tx.Model(&models.Patient{}).Where("id = ?", appointment.PatientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	if err := tx.Model(&models.Doctor{}).Where("id = ?", appointment.DoctorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// CountOnDate counts appointments whose date component equals the given day
// in server-local time, using a half-open range query.
func (r *AppointmentRepository) CountOnDate(day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Count(&count).Error
	return count, err
}
