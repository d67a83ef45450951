package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"fintrack-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RespondError writes the JSON envelope and status for a usecase error.
func RespondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": err.Error(),
			"errors":  apperr.FieldsOf(err),
		})
	case apperr.KindAuthentication:
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": err.Error(),
		})
	case apperr.KindAuthorization:
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "fail",
			"message": err.Error(),
		})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Something went wrong.",
		})
	}
}

// BindingError converts a gin ShouldBindJSON failure into a validation error
// with per-field messages.
func BindingError(err error) *apperr.Error {
	fields := map[string][]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := toSnake(fe.Field())
			fields[name] = append(fields[name], fieldMessage(name, fe))
		}
	}

	return apperr.ValidationFields("The given data was invalid.", fields)
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", name, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", name, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", toSnake(fe.Param()))
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", name, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", name)
	}
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Runs of capitals ("ID") collapse into one word
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
