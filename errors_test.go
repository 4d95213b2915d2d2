package tuner

import (
	"errors"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantOp   string
	}{
		{"duplicate parameter", NewDuplicateParameterError("Registry.Add", "TS"), ErrKindDuplicateParameter, "Registry.Add"},
		{"unknown parameter", NewUnknownParameterError("Engine.Add", "WPT"), ErrKindUnknownParameter, "Engine.Add"},
		{"empty search space", NewEmptySearchSpaceError("space.Build"), ErrKindEmptySearchSpace, "space.Build"},
		{"invalid strategy options", NewInvalidStrategyOptionsError("search.NewRandom", "fraction out of range"), ErrKindInvalidStrategyOptions, "search.NewRandom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te, ok := tt.err.(*TunerError)
			if !ok {
				t.Fatalf("expected *TunerError, got %T", tt.err)
			}
			if te.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", te.Kind, tt.wantKind)
			}
			if te.Op != tt.wantOp {
				t.Errorf("Op = %v, want %v", te.Op, tt.wantOp)
			}
			if !IsKind(tt.err, tt.wantKind) {
				t.Errorf("IsKind(%v) = false, want true", tt.wantKind)
			}
			if tt.err.Error() == "" {
				t.Error("Error() is empty")
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("base error")
	wrapped := &TunerError{Kind: ErrKindInvalidStrategyOptions, Op: "Test", Message: "wrapped", Err: base}

	if !errors.Is(wrapped, base) {
		t.Error("errors.Is() should see through TunerError.Unwrap()")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrKindDuplicateParameter, "DuplicateParameter"},
		{ErrKindUnknownParameter, "UnknownParameter"},
		{ErrKindEmptySearchSpace, "EmptySearchSpace"},
		{ErrKindInvalidStrategyOptions, "InvalidStrategyOptions"},
		{ErrorKind(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}
