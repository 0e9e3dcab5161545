package serverutils

import (
	"errors"
	"fmt"

	"ai-chatdesk-be/pkg/resource"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// abspath accepts POSIX-absolute and Windows drive-letter paths,
	// the same rule the resource codec enforces.
	_ = v.RegisterValidation("abspath", func(fl validator.FieldLevel) bool {
		return resource.IsAbsPath(fl.Field().String())
	})
	return v
}

// ValidateRequest runs struct-tag validation and returns the first
// violation as a readable error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("field %s failed on rule %s", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}
