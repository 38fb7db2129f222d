package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/peakstore/peakstore-be/internal/apperr"
)

var validate = validatorv10.New()

// BindAndValidate binds the JSON body into `out` and runs struct validation.
// Failures come back as a ValidationError so handlers can hand them straight
// to Error.
func BindAndValidate(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperr.Validationf("invalid request body")
	}

	if err := validate.Struct(out); err != nil {
		if ve, ok := err.(validatorv10.ValidationErrors); ok {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fe.Field())
			}
			return apperr.Validationf(
				"missing or invalid fields: %s", strings.Join(fields, ", "),
			)
		}
		return apperr.Validationf("invalid request body")
	}

	return nil
}
