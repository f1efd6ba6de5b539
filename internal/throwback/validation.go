package throwback

import (
	"github.com/go-playground/validator/v10"
)

// TagOffset is the validator tag accepting only known offset keys.
const TagOffset = "offset"

// RegisterValidations adds the throwback specific tags to v.
func RegisterValidations(v *validator.Validate) error {
	known := make(map[string]struct{}, len(catalog))
	for _, key := range OffsetKeys() {
		known[key] = struct{}{}
	}

	return v.RegisterValidation(TagOffset, func(fl validator.FieldLevel) bool {
		_, ok := known[fl.Field().String()]
		return ok
	})
}

// NewValidator returns a validator with the throwback tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	if err := RegisterValidations(v); err != nil {
		// the tag name is a constant, registration can only fail on programmer error
		panic(err)
	}

	return v
}
