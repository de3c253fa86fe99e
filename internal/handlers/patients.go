package handlers

import (
	"errors"
	"net/http"

	"clinic-admin/internal/models"
	"clinic-admin/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PatientHandler struct {
	patients *repository.PatientRepository
	log      *zap.Logger
}

func NewPatientHandler(patients *repository.PatientRepository, log *zap.Logger) *PatientHandler {
	return &PatientHandler{patients: patients, log: log}
}

func (h *PatientHandler) List(c *gin.Context) {
	page := pageParam(c)
	patients, total, err := h.patients.List(page, pageSize)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	render(c, http.StatusOK, "patients.html", gin.H{
		"patients":   patients,
		"pagination": paginate(page, total),
	})
}

func (h *PatientHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Add patient", "/admin/patients/add", PatientForm{}, nil)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var form PatientForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Add patient", "/admin/patients/add", form, validationMessages(err))
		return
	}

	var patient models.Patient
	form.apply(&patient)
	if err := h.patients.Create(&patient); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Patient added.")
	c.Redirect(http.StatusFound, "/admin/patients")
}

func (h *PatientHandler) Edit(c *gin.Context) {
	patient, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "Edit patient", "/admin/patients/edit/"+c.Param("id"), patientForm(patient), nil)
}

func (h *PatientHandler) Update(c *gin.Context) {
	patient, ok := h.load(c)
	if !ok {
		return
	}

	var form PatientForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Edit patient", "/admin/patients/edit/"+c.Param("id"), form, validationMessages(err))
		return
	}

	form.apply(patient)
	if err := h.patients.Update(patient); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Patient updated.")
	c.Redirect(http.StatusFound, "/admin/patients")
}

func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid patient id")
		return
	}

	err := h.patients.Delete(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.String(http.StatusNotFound, "patient not found")
	case errors.Is(err, repository.ErrHasAppointments):
		addFlash(c, "danger", "Cannot delete a patient with existing appointments.")
		c.Redirect(http.StatusFound, "/admin/patients")
	case err != nil:
		internalError(c, h.log, err)
	default:
		addFlash(c, "warning", "Patient deleted.")
		c.Redirect(http.StatusFound, "/admin/patients")
	}
}

func (h *PatientHandler) load(c *gin.Context) (*models.Patient, bool) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid patient id")
		return nil, false
	}
	patient, err := h.patients.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "patient not found")
		return nil, false
	}
	if err != nil {
		internalError(c, h.log, err)
		return nil, false
	}
	return patient, true
}

func (h *PatientHandler) renderForm(c *gin.Context, status int, title, action string, form PatientForm, errs map[string]string) {
	render(c, status, "patient_form.html", gin.H{
		"title":  title,
		"action": action,
		"form":   form,
		"errors": errs,
	})
}
