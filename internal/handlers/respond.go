package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"organic-marketplace/internal/storage"
)

// storageError maps a storage failure onto the response taxonomy: missing
// record 404, unique-index conflict 400, anything else 500.
func storageError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": resource + " already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to access " + resource})
	}
}

// bindError turns a binding failure into a 400 with a readable message.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(fields, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	default:
		return field + " is invalid"
	}
}
