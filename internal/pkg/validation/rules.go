package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/siwes/interntrack/internal/app/models"
)

// Validation rule constants
const (
	// Password min length
	PasswordMinLength = 8
	// bcrypt ignores bytes past 72
	PasswordMaxLength = 72
)

var registerOnce sync.Once

// RegisterRules installs the custom binding tags on gin's validator and
// reports field names by their json tag
func RegisterRules() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom tags on v
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v.RegisterValidation("role", validateStaffRole)
}

// validateStaffRole accepts any role a coordinator may provision
func validateStaffRole(fl validator.FieldLevel) bool {
	role, err := models.ParseRole(fl.Field().String())
	if err != nil {
		return false
	}
	return role.IsStaff()
}

// CheckPassword reports why a password is too weak, or nil
func CheckPassword(password string) error {
	if len(password) < PasswordMinLength {
		return fmt.Errorf("password must be at least %d characters long", PasswordMinLength)
	}
	if len(password) > PasswordMaxLength {
		return fmt.Errorf("password must be at most %d bytes long", PasswordMaxLength)
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
