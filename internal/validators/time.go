package validators

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// IsHHMM reports whether s is a 24-hour "HH:MM" clock value. Empty is
// allowed so optional break windows can be omitted.
func IsHHMM(s string) bool {
	if s == "" {
		return true
	}
	return hhmmPattern.MatchString(s)
}

func hhmm(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

// Register attaches custom rules to gin's binding validator. Call once
// at startup.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", hhmm)
	}
}
