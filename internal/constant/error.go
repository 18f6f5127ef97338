package constant

import "fmt"

// Error is the structured error every mutation path returns across the
// service boundary.
type Error interface {
	error
	Code() int
	Kind() string
	Message() string
	WithData(data interface{}) Error
}

type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, kind: %s, message: %s", e.code, e.Kind(), e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

// Kind maps the code range onto the error taxonomy.
func (e *CustomError) Kind() string {
	switch {
	case e.code >= 2000 && e.code < 2100:
		return KindAuthorization
	case e.code >= 2100 && e.code < 2200:
		return KindValidation
	case e.code >= 2200 && e.code < 2300:
		return KindInvalidTransition
	case e.code >= 2300 && e.code < 2400:
		return KindNotFound
	case e.code >= 2400 && e.code < 2500:
		return KindConflict
	case e.code >= 2500 && e.code < 2600:
		return KindExternalService
	default:
		return KindSystem
	}
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

// NewError 创建错误
func NewError(code int) Error {
	if msg, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: msg}
	}
	return &CustomError{code: code, message: "unknown error"}
}

// NewErrorf 创建带格式化消息的错误
func NewErrorf(code int, format string, args ...interface{}) Error {
	return &CustomError{code: code, message: fmt.Sprintf(format, args...)}
}

func GetErrorMessage(code int) (string, bool) {
	msg, exists := ErrorMessages[code]
	return msg, exists
}
