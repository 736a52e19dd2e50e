package httperr

import "errors"

// BusinessError is a rejection the client can fix. Code is what the client
// sees; Field names the offending input and is only logged.
type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field == "" {
		return e.Code
	}
	return e.Code + ": " + e.Field
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrField(code, field string) error {
	return BusinessError{Code: code, Field: field}
}

func asBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	be, ok := asBusiness(err)
	return ok && be.Code == code
}

// Code returns the business code of err, or "" if err is not a BusinessError.
func Code(err error) string {
	be, _ := asBusiness(err)
	return be.Code
}

// Field returns the field a BusinessError points at, if any.
func Field(err error) string {
	be, _ := asBusiness(err)
	return be.Field
}
