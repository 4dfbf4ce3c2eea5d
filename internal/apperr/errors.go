package apperr

// ValidationError reports malformed input such as a missing key, a mistyped
// value or an invalid setting.
type ValidationError struct {
	Source  string
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewFieldValidation reports a problem with a single named field.
func NewFieldValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// WithSource returns a copy of e attributed to the given file or origin.
func (e *ValidationError) WithSource(source string) *ValidationError {
	cp := *e
	cp.Source = source
	return &cp
}
