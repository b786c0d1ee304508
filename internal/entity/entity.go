// Package entity defines the persisted domain records. Every record carries
// an int64 surrogate id where zero means "not yet saved"; constructors
// validate invariants before a record is handed to the persistence layer.
package entity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Kinds name entity types on audit records and error messages.
const (
	KindAddress    = "Address"
	KindFreelancer = "Freelancer"
	KindInvoice    = "Invoice"
	KindService    = "Service"
	KindPayment    = "Payment"
)

// Auditable is the common identity contract of persisted records.
type Auditable interface {
	EntityID() int64
	Kind() string
}

var validate = newValidator()

// newValidator registers the custom tags the library does not ship with.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("iban", validIBAN); err != nil {
		panic(err)
	}

	return v
}

func validIBAN(fl validator.FieldLevel) bool {
	return checkIBAN(fl.Field().String())
}

// checkIBAN verifies the ISO 13616 shape (country code, check digits,
// alphanumeric BBAN) and the ISO 7064 mod-97 checksum.
func checkIBAN(s string) bool {
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' || s[1] < 'A' || s[1] > 'Z' {
		return false
	}
	if s[2] < '0' || s[2] > '9' || s[3] < '0' || s[3] > '9' {
		return false
	}

	// The country code and check digits move to the end; letters expand to
	// 10..35 and the whole number must be congruent to 1 mod 97.
	rearranged := s[4:] + s[:4]
	rem := 0

	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]

		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			rem = (rem*100 + int(c-'A') + 10) % 97
		default:
			return false
		}
	}

	return rem == 1
}

// runValidate maps validator failures onto the domain validation error kind.
func runValidate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Validation("%v", err)
	}

	fe := fieldErrs[0]

	return apperror.Validation("%s %s", fe.Field(), tagMessage(fe))
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "is not a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "number":
		return "must contain digits only"
	case "iban":
		return "is not a valid IBAN"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
