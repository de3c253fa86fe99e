package handlers

import (
	"errors"
	"net/http"
	"time"

	"clinic-admin/internal/models"
	"clinic-admin/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidDateMessage = "invalid date format, expected YYYY-MM-DD HH:MM"

type AppointmentHandler struct {
	appointments *repository.AppointmentRepository
	patients     *repository.PatientRepository
	doctors      *repository.DoctorRepository
	log          *zap.Logger
}

func NewAppointmentHandler(
	appointments *repository.AppointmentRepository,
	patients *repository.PatientRepository,
	doctors *repository.DoctorRepository,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		log:          log,
	}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	page := pageParam(c)
	appointments, total, err := h.appointments.List(page, pageSize)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	render(c, http.StatusOK, "appointments.html", gin.H{
		"appointments": appointments,
		"pagination":   paginate(page, total),
	})
}

func (h *AppointmentHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Add appointment", "/admin/appointments/add", AppointmentForm{}, nil)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	form, date, errs := h.validate(c)
	if c.IsAborted() {
		return
	}
	if len(errs) > 0 {
		h.renderForm(c, http.StatusOK, "Add appointment", "/admin/appointments/add", form, errs)
		return
	}

	var appointment models.Appointment
	form.apply(&appointment, date)
	if err := h.appointments.Create(&appointment); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Appointment added.")
	c.Redirect(http.StatusFound, "/admin/appointments")
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	appointment, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "Edit appointment", "/admin/appointments/edit/"+c.Param("id"), appointmentForm(appointment), nil)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	appointment, ok := h.load(c)
	if !ok {
		return
	}

	form, date, errs := h.validate(c)
	if c.IsAborted() {
		return
	}
	if len(errs) > 0 {
		h.renderForm(c, http.StatusOK, "Edit appointment", "/admin/appointments/edit/"+c.Param("id"), form, errs)
		return
	}

	form.apply(appointment, date)
	if err := h.appointments.Update(appointment); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Appointment updated.")
	c.Redirect(http.StatusFound, "/admin/appointments")
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid appointment id")
		return
	}

	err := h.appointments.Delete(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.String(http.StatusNotFound, "appointment not found")
	case err != nil:
		internalError(c, h.log, err)
	default:
		addFlash(c, "warning", "Appointment deleted.")
		c.Redirect(http.StatusFound, "/admin/appointments")
	}
}

// validate binds the form and checks the cross-entity constraints: the date
// string must parse and both foreign keys must resolve to existing rows.
func (h *AppointmentHandler) validate(c *gin.Context) (AppointmentForm, time.Time, map[string]string) {
	var form AppointmentForm
	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = validationMessages(err)
	}

	var date time.Time
	if form.AppointmentDate != "" {
		var err error
		date, err = time.ParseInLocation(appointmentDateLayout, form.AppointmentDate, time.Local)
		if err != nil {
			errs["appointment_date"] = invalidDateMessage
		}
	}

	if form.PatientID != 0 {
		if _, err := h.patients.Get(form.PatientID); errors.Is(err, repository.ErrNotFound) {
			errs["patient_id"] = "selected patient does not exist"
		} else if err != nil {
			internalError(c, h.log, err)
			c.Abort()
		}
	}
	if form.DoctorID != 0 {
		if _, err := h.doctors.Get(form.DoctorID); errors.Is(err, repository.ErrNotFound) {
			errs["doctor_id"] = "selected doctor does not exist"
		} else if err != nil {
			internalError(c, h.log, err)
			c.Abort()
		}
	}

	return form, date, errs
}

func (h *AppointmentHandler) load(c *gin.Context) (*models.Appointment, bool) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid appointment id")
		return nil, false
	}
	appointment, err := h.appointments.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "appointment not found")
		return nil, false
	}
	if err != nil {
		internalError(c, h.log, err)
		return nil, false
	}
	return appointment, true
}

// renderForm re-renders the appointment form with the full patient and
// doctor option lists so entered values survive a validation failure.
func (h *AppointmentHandler) renderForm(c *gin.Context, status int, title, action string, form AppointmentForm, errs map[string]string) {
	patients, err := h.patients.All()
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	doctors, err := h.doctors.All()
	if err != nil {
		internalError(c, h.log, err)
		return
	}

	render(c, status, "appointment_form.html", gin.H{
		"title":    title,
		"action":   action,
		"form":     form,
		"errors":   errs,
		"patients": patients,
		"doctors":  doctors,
		"statuses": models.AppointmentStatuses(),
	})
}
