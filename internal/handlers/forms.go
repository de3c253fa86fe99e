package handlers

import (
	"time"

	"clinic-admin/internal/models"
)

const (
	birthDateLayout       = "2006-01-02"
	appointmentDateLayout = "2006-01-02 15:04"
)

// --- Structs for Form Binding ---

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type PatientForm struct {
	FullName  string `form:"full_name" binding:"required,max=150"`
	Phone     string `form:"phone" binding:"required,max=20"`
	Email     string `form:"email" binding:"omitempty,email,max=120"`
	BirthDate string `form:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address   string `form:"address"`
}

type DoctorForm struct {
	FullName  string `form:"full_name" binding:"required,max=150"`
	Specialty string `form:"specialty" binding:"required,max=100"`
	Phone     string `form:"phone" binding:"required,max=20"`
	Email     string `form:"email" binding:"omitempty,email,max=120"`
	Room      string `form:"room" binding:"omitempty,max=20"`
}

type AppointmentForm struct {
	PatientID       uint   `form:"patient_id" binding:"required"`
	DoctorID        uint   `form:"doctor_id" binding:"required"`
	AppointmentDate string `form:"appointment_date" binding:"required"`
	Status          string `form:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

// --- Per-entity mapping between forms and records ---

func (f *PatientForm) apply(p *models.Patient) {
	p.FullName = f.FullName
	p.Phone = f.Phone
	p.Email = optional(f.Email)
	p.Address = optional(f.Address)
	p.BirthDate = nil
	if f.BirthDate != "" {
		// Format already checked by the datetime binding rule.
		if d, err := time.ParseInLocation(birthDateLayout, f.BirthDate, time.Local); err == nil {
			p.BirthDate = &d
		}
	}
}

func patientForm(p *models.Patient) PatientForm {
	f := PatientForm{
		FullName: p.FullName,
		Phone:    p.Phone,
		Email:    fromOptional(p.Email),
		Address:  fromOptional(p.Address),
	}
	if p.BirthDate != nil {
		f.BirthDate = p.BirthDate.Format(birthDateLayout)
	}
	return f
}

func (f *DoctorForm) apply(d *models.Doctor) {
	d.FullName = f.FullName
	d.Specialty = f.Specialty
	d.Phone = f.Phone
	d.Email = optional(f.Email)
	d.Room = optional(f.Room)
}

func doctorForm(d *models.Doctor) DoctorForm {
	return DoctorForm{
		FullName:  d.FullName,
		Specialty: d.Specialty,
		Phone:     d.Phone,
		Email:     fromOptional(d.Email),
		Room:      fromOptional(d.Room),
	}
}

// apply copies validated form values onto the record. The appointment date
// must already be parsed by the handler.
func (f *AppointmentForm) apply(a *models.Appointment, date time.Time) {
	a.PatientID = f.PatientID
	a.DoctorID = f.DoctorID
	a.AppointmentDate = date
	a.Status = models.StatusScheduled
	if f.Status != "" {
		a.Status = models.AppointmentStatus(f.Status)
	}
}

func appointmentForm(a *models.Appointment) AppointmentForm {
	return AppointmentForm{
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate.Format(appointmentDateLayout),
		Status:          string(a.Status),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
