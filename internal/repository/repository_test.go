package repository

import (
	"testing"
	"time"

	"clinic-admin/internal/database"
	"clinic-admin/internal/models"
	"clinic-admin/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedPatient(t *testing.T, repo *PatientRepository, name string) *models.Patient {
	t.Helper()
	patient := &models.Patient{FullName: name, Phone: "555-0101"}
	require.NoError(t, repo.Create(patient))
	return patient
}

func seedDoctor(t *testing.T, repo *DoctorRepository, name string) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{FullName: name, Specialty: "Therapy", Phone: "555-0202"}
	require.NoError(t, repo.Create(doctor))
	return doctor
}

func TestPatientCreateListRoundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	created := seedPatient(t, repo, "Anna Smith")

	patients, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, patients, 1)
	assert.Equal(t, created.ID, patients[0].ID)
	assert.Equal(t, "Anna Smith", patients[0].FullName)
}

func TestPatientUpdateMergesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	email := "anna@example.com"
	patient := &models.Patient{FullName: "Anna Smith", Phone: "555-0101", Email: &email}
	require.NoError(t, repo.Create(patient))

	patient.Phone = "555-9999"
	require.NoError(t, repo.Update(patient))

	got, err := repo.Get(patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-9999", got.Phone)
	assert.Equal(t, "Anna Smith", got.FullName)
	require.NotNil(t, got.Email)
	assert.Equal(t, "anna@example.com", *got.Email)
}

func TestPatientListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	for i := 0; i < 13; i++ {
		seedPatient(t, repo, "Patient")
	}

	page1, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 13, total)
	assert.Len(t, page1, 10)

	page2, _, err := repo.List(2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 3)

	// Insertion order: ids ascend across pages.
	assert.Less(t, page1[9].ID, page2[0].ID)
}

func TestPatientDeleteTwiceYieldsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientRepository(db)

	patient := seedPatient(t, repo, "Anna Smith")
	require.NoError(t, repo.Delete(patient.ID))

	_, total, err := repo.List(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	assert.ErrorIs(t, repo.Delete(patient.ID), ErrNotFound)
}

func TestPatientDeleteRestrictedByAppointments(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")
	require.NoError(t, appointments.Create(&models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Now(),
		Status:          models.StatusScheduled,
	}))

	assert.ErrorIs(t, patients.Delete(patient.ID), ErrHasAppointments)

	// Still there.
	_, err := patients.Get(patient.ID)
	require.NoError(t, err)

	// Removing the appointment unblocks deletion.
	appts, err := appointments.ListForPatient(patient.ID)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	require.NoError(t, appointments.Delete(appts[0].ID))
	require.NoError(t, patients.Delete(patient.ID))
}

func TestDoctorDeleteRestrictedByAppointments(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")
	require.NoError(t, appointments.Create(&models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Now(),
	}))

	assert.ErrorIs(t, doctors.Delete(doctor.ID), ErrHasAppointments)
}

func TestAppointmentCreateRejectsMissingReferences(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")

	err := appointments.Create(&models.Appointment{
		PatientID:       patient.ID + 100,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	err = appointments.Create(&models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID + 100,
		AppointmentDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing was written.
	_, total, err := appointments.List(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestAppointmentCreateRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")

	err := appointments.Create(&models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Now(),
		Status:          models.AppointmentStatus("postponed"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointmentListOrderedByDateDescending(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")

	base := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	for _, offset := range []int{1, 0, 2} {
		require.NoError(t, appointments.Create(&models.Appointment{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: base.AddDate(0, 0, offset),
		}))
	}

	rows, total, err := appointments.List(1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i-1].AppointmentDate.Before(rows[i].AppointmentDate))
	}
	assert.Equal(t, "Anna Smith", rows[0].PatientName)
	assert.Equal(t, "Dr. House", rows[0].DoctorName)
	assert.Equal(t, "Therapy", rows[0].DoctorSpecialty)
}

func TestStatsCountsTodayOnly(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	doctors := NewDoctorRepository(db)
	appointments := NewAppointmentRepository(db)
	stats := NewStatsRepository(db)

	patient := seedPatient(t, patients, "Anna Smith")
	doctor := seedDoctor(t, doctors, "Dr. House")

	now := time.Now()
	require.NoError(t, appointments.Create(&models.Appointment{
		PatientID: patient.ID, DoctorID: doctor.ID,
		AppointmentDate: now,
	}))
	require.NoError(t, appointments.Create(&models.Appointment{
		PatientID: patient.ID, DoctorID: doctor.ID,
		AppointmentDate: now.AddDate(0, 0, -1),
	}))

	got, err := stats.Collect(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Patients)
	assert.EqualValues(t, 1, got.Doctors)
	assert.EqualValues(t, 2, got.Appointments)
	assert.EqualValues(t, 1, got.TodayAppointments)
}

func TestAdminBootstrapIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)

	require.NoError(t, repo.Bootstrap("admin", "admin123"))
	require.NoError(t, repo.Bootstrap("other", "other-password"))

	admin, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword("admin123", admin.PasswordHash))

	// Second bootstrap must not add a row.
	_, err = repo.GetByUsername("other")
	assert.ErrorIs(t, err, ErrNotFound)
}
