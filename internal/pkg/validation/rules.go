package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// SINPattern matches student identification numbers (SIN<digits>)
	SINPattern = `^SIN\d+$`

	// RoomNumberPattern matches room numbers like "A-101"
	RoomNumberPattern = `^[A-Z]-\d{3}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	SIN        *regexp.Regexp
	RoomNumber *regexp.Regexp
}{
	SIN:        regexp.MustCompile(SINPattern),
	RoomNumber: regexp.MustCompile(RoomNumberPattern),
}

// RegisterCustomValidators adds hostel-domain rules ("sin", "roomnum") to
// gin's binding engine so request DTOs can use them in binding tags.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("sin", validSIN); err != nil {
		return err
	}
	return v.RegisterValidation("roomnum", validRoomNumber)
}

func validSIN(fl validator.FieldLevel) bool {
	return CompiledPatterns.SIN.MatchString(fl.Field().String())
}

func validRoomNumber(fl validator.FieldLevel) bool {
	return CompiledPatterns.RoomNumber.MatchString(fl.Field().String())
}
