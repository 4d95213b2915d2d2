package tuner

import "fmt"

// ErrorKind categorizes the fatal errors the tuning core can raise.
// Infeasibility reported by the external runner is data, not an error, and
// never produces a TunerError; see runner.Cost.
type ErrorKind int

const (
	// ErrKindDuplicateParameter: a parameter name was registered twice.
	ErrKindDuplicateParameter ErrorKind = iota
	// ErrKindUnknownParameter: a constraint or modifier names a parameter
	// that was never registered.
	ErrKindUnknownParameter
	// ErrKindEmptySearchSpace: enumeration produced zero configurations.
	ErrKindEmptySearchSpace
	// ErrKindInvalidStrategyOptions: a strategy option is out of its
	// documented range (fraction, temperature, PSO weights).
	ErrKindInvalidStrategyOptions
)

// TunerError is a structured error with enough context to let a driver
// branch on Kind without parsing the message.
type TunerError struct {
	Kind    ErrorKind
	Op      string // operation that failed, e.g. "Registry.Add"
	Message string
	Err     error // underlying error, if any
}

// Error implements the error interface.
func (e *TunerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tuner: %s error in %s: %s (caused by: %v)", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("tuner: %s error in %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap allows errors.Is/errors.As to inspect the underlying cause.
func (e *TunerError) Unwrap() error {
	return e.Err
}

// String renders the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindDuplicateParameter:
		return "DuplicateParameter"
	case ErrKindUnknownParameter:
		return "UnknownParameter"
	case ErrKindEmptySearchSpace:
		return "EmptySearchSpace"
	case ErrKindInvalidStrategyOptions:
		return "InvalidStrategyOptions"
	default:
		return "Unknown"
	}
}

// NewDuplicateParameterError reports a parameter name registered twice.
func NewDuplicateParameterError(op, name string) error {
	return &TunerError{Kind: ErrKindDuplicateParameter, Op: op, Message: fmt.Sprintf("parameter %q already registered", name)}
}

// NewUnknownParameterError reports a reference to an unregistered parameter.
func NewUnknownParameterError(op, name string) error {
	return &TunerError{Kind: ErrKindUnknownParameter, Op: op, Message: fmt.Sprintf("unknown parameter %q", name)}
}

// NewEmptySearchSpaceError reports that enumeration produced no configurations.
func NewEmptySearchSpaceError(op string) error {
	return &TunerError{Kind: ErrKindEmptySearchSpace, Op: op, Message: "enumeration produced zero feasible configurations"}
}

// NewInvalidStrategyOptionsError reports an out-of-range strategy option.
func NewInvalidStrategyOptionsError(op, message string) error {
	return &TunerError{Kind: ErrKindInvalidStrategyOptions, Op: op, Message: message}
}

// IsKind reports whether err is a *TunerError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	te, ok := err.(*TunerError)
	return ok && te.Kind == kind
}
