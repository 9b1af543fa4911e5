package httperr

import "errors"

// Business error codes shared between the domain, use cases and handlers.
const (
	CodeInvalidService       = "invalid_service"
	CodeServiceNotFound      = "service_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeSlotTaken            = "slot_taken"
	CodeInvalidState         = "invalid_state"
	CodeForbidden            = "forbidden"
	CodeOutsideBusinessHours = "outside_business_hours"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
