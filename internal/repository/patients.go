package repository

import (
	"errors"

	"clinic-admin/internal/models"

	"gorm.io/gorm"
)

// PatientRepository provides queries over patients.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// List returns one page of patients in insertion order plus the total count.
func (r *PatientRepository) List(page, pageSize int) ([]models.Patient, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []models.Patient
	offset := (page - 1) * pageSize
	if err := r.db.Order("id").Offset(offset).Limit(pageSize).Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

// All returns every patient, for selection lists.
func (r *PatientRepository) All() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Get returns the patient with the given id.
func (r *PatientRepository) Get(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// Create inserts a new patient record.
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// Update saves changes to an existing patient record.
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete removes the patient with the given id. Deletion is restricted while
// appointments still reference the patient.
func (r *PatientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var appointments int64
		if err := tx.Model(&models.Appointment{}).Where("patient_id = ?", id).Count(&appointments).Error; err != nil {
			return err
		}
		if appointments > 0 {
			return ErrHasAppointments
		}

		res := tx.Delete(&models.Patient{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
