package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindUnexpected
)

// BusinessError carries a machine-readable code plus the error kind the HTTP
// layer maps onto a status code.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func Validation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ForbiddenErr(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func Unexpected(code, message string) error {
	return BusinessError{Kind: KindUnexpected, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
