// Package params validates container construction parameters using the
// same struct-tag-driven approach the teacher repository uses for its
// own request validation (api/rosetta/validator.go), built on
// github.com/go-playground/validator/v10. A failed check is always a
// Parameter-invalid error per the error handling design: callers treat
// it as fatal at construction time.
package params

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("even", isEven); err != nil {
			panic(fmt.Sprintf("params: could not register validator: %v", err))
		}
	})
	return validate
}

func isEven(fl validator.FieldLevel) bool {
	return fl.Field().Int()%2 == 0
}

// Check validates cfg's struct tags and returns a wrapped error
// describing every failing field if any fail, or nil if cfg is valid.
func Check(cfg interface{}) error {
	if err := get().Struct(cfg); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
