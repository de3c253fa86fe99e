package handlers

import (
	"errors"
	"net/http"

	"clinic-admin/internal/models"
	"clinic-admin/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	doctors *repository.DoctorRepository
	log     *zap.Logger
}

func NewDoctorHandler(doctors *repository.DoctorRepository, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, log: log}
}

func (h *DoctorHandler) List(c *gin.Context) {
	page := pageParam(c)
	doctors, total, err := h.doctors.List(page, pageSize)
	if err != nil {
		internalError(c, h.log, err)
		return
	}
	render(c, http.StatusOK, "doctors.html", gin.H{
		"doctors":    doctors,
		"pagination": paginate(page, total),
	})
}

func (h *DoctorHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Add doctor", "/admin/doctors/add", DoctorForm{}, nil)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var form DoctorForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Add doctor", "/admin/doctors/add", form, validationMessages(err))
		return
	}

	var doctor models.Doctor
	form.apply(&doctor)
	if err := h.doctors.Create(&doctor); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Doctor added.")
	c.Redirect(http.StatusFound, "/admin/doctors")
}

func (h *DoctorHandler) Edit(c *gin.Context) {
	doctor, ok := h.load(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, "Edit doctor", "/admin/doctors/edit/"+c.Param("id"), doctorForm(doctor), nil)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	doctor, ok := h.load(c)
	if !ok {
		return
	}

	var form DoctorForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusOK, "Edit doctor", "/admin/doctors/edit/"+c.Param("id"), form, validationMessages(err))
		return
	}

	form.apply(doctor)
	if err := h.doctors.Update(doctor); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "Doctor updated.")
	c.Redirect(http.StatusFound, "/admin/doctors")
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid doctor id")
		return
	}

	err := h.doctors.Delete(id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.String(http.StatusNotFound, "doctor not found")
	case errors.Is(err, repository.ErrHasAppointments):
		addFlash(c, "danger", "Cannot delete a doctor with existing appointments.")
		c.Redirect(http.StatusFound, "/admin/doctors")
	case err != nil:
		internalError(c, h.log, err)
	default:
		addFlash(c, "warning", "Doctor deleted.")
		c.Redirect(http.StatusFound, "/admin/doctors")
	}
}

func (h *DoctorHandler) load(c *gin.Context) (*models.Doctor, bool) {
	id, ok := idParam(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid doctor id")
		return nil, false
	}
	doctor, err := h.doctors.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "doctor not found")
		return nil, false
	}
	if err != nil {
		internalError(c, h.log, err)
		return nil, false
	}
	return doctor, true
}

func (h *DoctorHandler) renderForm(c *gin.Context, status int, title, action string, form DoctorForm, errs map[string]string) {
	render(c, status, "doctor_form.html", gin.H{
		"title":  title,
		"action": action,
		"form":   form,
		"errors": errs,
	})
}
