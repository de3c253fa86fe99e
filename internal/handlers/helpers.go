package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// pageSize is the fixed page size for every list view.
const pageSize = 10

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + message)
	_ = session.Save()
}

func popFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			category, message = "info", s
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}

// render wraps c.HTML, attaching any pending flash messages.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = map[string]string{}
	}
	data["flashes"] = popFlashes(c)
	c.HTML(status, name, data)
}

type pagination struct {
	Page    int
	Total   int64
	Pages   int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

func paginate(page int, total int64) pagination {
	pages := int((total + pageSize - 1) / pageSize)
	return pagination{
		Page:    page,
		Total:   total,
		Pages:   pages,
		HasPrev: page > 1,
		HasNext: page < pages,
		Prev:    page - 1,
		Next:    page + 1,
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// validationMessages turns a binding error into per-field messages keyed by
// the snake_case form field name.
func validationMessages(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "invalid form submission"
		return out
	}

	for _, fe := range verrs {
		field := toSnake(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "this field is required"
		case "email":
			out[field] = "must be a valid email address"
		case "max":
			out[field] = "must be at most " + fe.Param() + " characters"
		case "datetime":
			out[field] = "invalid date, expected YYYY-MM-DD"
		case "oneof":
			out[field] = "must be one of: " + fe.Param()
		default:
			out[field] = "invalid value"
		}
	}
	return out
}

func toSnake(name string) string {
	var b strings.Builder
	var prevUpper bool
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !prevUpper {
				b.WriteByte('_')
			}
			prevUpper = true
			r += 'a' - 'A'
		} else {
			prevUpper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func internalError(c *gin.Context, log *zap.Logger, err error) {
	log.Error("request failed", zap.Error(err))
	c.String(http.StatusInternalServerError, "internal server error")
}
