package middleware

import (
	"net/http"

	"clinic-admin/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionAdminKey is the session key holding the authenticated admin id.
	SessionAdminKey = "admin_id"

	// ContextAdminKey is the gin context key holding the *models.AdminUser.
	ContextAdminKey = "admin"
)

// RequireAdmin gates administrative routes. Requests without a valid session
// are redirected to the login page; the response never reveals whether the
// requested resource exists.
func RequireAdmin(admins *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		id, ok := session.Get(SessionAdminKey).(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		admin, err := admins.GetByID(id)
		if err != nil {
			// Stale session for a deleted admin: tear it down.
			session.Delete(SessionAdminKey)
			_ = session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}
