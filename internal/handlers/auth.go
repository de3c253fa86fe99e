package handlers

import (
	"errors"
	"net/http"

	"clinic-admin/internal/middleware"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// invalidCredentialsMessage is intentionally generic and never discloses
// whether the username exists.
const invalidCredentialsMessage = "invalid username or password"

type AuthHandler struct {
	admins *repository.AdminRepository
	log    *zap.Logger
}

func NewAuthHandler(admins *repository.AdminRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{admins: admins, log: log}
}

// Root redirects to the dashboard for authenticated callers, otherwise to
// the login page.
func (h *AuthHandler) Root(c *gin.Context) {
	session := sessions.Default(c)
	if _, ok := session.Get(middleware.SessionAdminKey).(uint); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if _, ok := session.Get(middleware.SessionAdminKey).(uint); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"form": LoginForm{}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"form":   form,
			"errors": validationMessages(err),
		})
		return
	}

	admin, err := h.admins.GetByUsername(form.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		internalError(c, h.log, err)
		return
	}
	if err != nil || !utils.CheckPassword(form.Password, admin.PasswordHash) {
		h.log.Info("failed login attempt", zap.String("username", form.Username))
		render(c, http.StatusOK, "login.html", gin.H{
			"form":  form,
			"error": invalidCredentialsMessage,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionAdminKey, admin.ID)
	if err := session.Save(); err != nil {
		internalError(c, h.log, err)
		return
	}

	addFlash(c, "success", "You are now logged in.")
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionAdminKey)
	_ = session.Save()

	addFlash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
