package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

type searchRequest struct {
	Term string `json:"term" validate:"max=100"`
}

type selectProductRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// dialogRequest edits the open dialog. Absent fields are left alone.
// Quantities below one are accepted and clamped by the dialog; there is no
// upper bound, matching the cart's own increment.
type dialogRequest struct {
	Quantity     *int    `json:"quantity"`
	Observations *string `json:"observations" validate:"omitempty,max=500"`
}

// newValidator returns the validator shared by all storefront routes.
func newValidator() *validatorv10.Validate {
	return validatorv10.New()
}

// bindAndValidate binds the JSON body into out and runs validation.
// On failure it writes a 400 and returns the error so the handler can stop.
func bindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_failed",
			"fields": validationErrorsToMap(err),
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return out
	}
	out["error"] = err.Error()
	return out
}
