package repository

import (
	"errors"

	"clinic-admin/internal/models"

	"gorm.io/gorm"
)

// DoctorRepository provides queries over doctors.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// List returns one page of doctors in insertion order plus the total count.
func (r *DoctorRepository) List(page, pageSize int) ([]models.Doctor, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var doctors []models.Doctor
	offset := (page - 1) * pageSize
	if err := r.db.Order("id").Offset(offset).Limit(pageSize).Find(&doctors).Error; err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

// All returns every doctor, for selection lists.
func (r *DoctorRepository) All() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Order("id").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// Get returns the doctor with the given id.
func (r *DoctorRepository) Get(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// Create inserts a new doctor record.
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// Update saves changes to an existing doctor record.
func (r *DoctorRepository) Update(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// Delete removes the doctor with the given id. Deletion is restricted while
// appointments still reference the doctor.
func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var appointments int64
		if err := tx.Model(&models.Appointment{}).Where("doctor_id = ?", id).Count(&appointments).Error; err != nil {
			return err
		}
		if appointments > 0 {
			return ErrHasAppointments
		}

		res := tx.Delete(&models.Doctor{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
