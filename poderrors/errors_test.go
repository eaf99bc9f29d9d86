package poderrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnrecognizedNodeKindError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &UnrecognizedNodeKindError{
			Kind:        "*pod.Config",
			Description: "&{Type:html Config:map[]}",
		}

		msg := err.Error()
		if msg != "unrecognized node kind: *pod.Config: &{Type:html Config:map[]}" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &UnrecognizedNodeKindError{}
		if err.Error() != "unrecognized node kind" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with kind only", func(t *testing.T) {
		err := &UnrecognizedNodeKindError{Kind: "*pod.Config"}
		if err.Error() != "unrecognized node kind: *pod.Config" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnrecognizedNodeKind", func(t *testing.T) {
		err := &UnrecognizedNodeKindError{Kind: "*pod.Config"}
		if !errors.Is(err, ErrUnrecognizedNodeKind) {
			t.Error("UnrecognizedNodeKindError should match ErrUnrecognizedNodeKind")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnrecognizedNodeKindError{}
		if errors.Is(err, ErrDecode) {
			t.Error("UnrecognizedNodeKindError should not match ErrDecode")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("UnrecognizedNodeKindError should not match ErrConfig")
		}
	})

	t.Run("As extracts UnrecognizedNodeKindError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &UnrecognizedNodeKindError{Kind: "*pod.Config"})
		var kindErr *UnrecognizedNodeKindError
		if !errors.As(err, &kindErr) {
			t.Fatal("errors.As should succeed")
		}
		if kindErr.Kind != "*pod.Config" {
			t.Errorf("unexpected kind: %s", kindErr.Kind)
		}
	})

	t.Run("NewUnrecognizedNodeKind captures Go type", func(t *testing.T) {
		type oddball struct{ X int }
		err := NewUnrecognizedNodeKind(&oddball{X: 7})
		if err.Kind != "*poderrors.oddball" {
			t.Errorf("unexpected kind: %s", err.Kind)
		}
		if err.Description == "" {
			t.Error("description should not be empty")
		}
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &DecodeError{
			Path:     "/path/to/doc.pod.json",
			NodePath: "contents[2].rows[0]",
			Message:  "cell is not a node",
			Cause:    cause,
		}

		msg := err.Error()
		expected := "decode error in /path/to/doc.pod.json at contents[2].rows[0]: cell is not a node: underlying error"
		if msg != expected {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &DecodeError{}
		if err.Error() != "decode error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &DecodeError{Path: "doc.pod.yaml"}
		if err.Error() != "decode error in doc.pod.yaml" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DecodeError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &DecodeError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrDecode", func(t *testing.T) {
		err := &DecodeError{Message: "test"}
		if !errors.Is(err, ErrDecode) {
			t.Error("DecodeError should match ErrDecode")
		}
	})

	t.Run("As extracts DecodeError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &DecodeError{Path: "doc.pod.json"})
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatal("errors.As should succeed")
		}
		if decErr.Path != "doc.pod.json" {
			t.Errorf("unexpected path: %s", decErr.Path)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "WithListMode",
			Message: "unknown list mode: grouped",
		}
		expected := "configuration error (WithListMode): unknown list mode: grouped"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		if err.Error() != "configuration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ConfigError{}
		if errors.Is(err, ErrDecode) {
			t.Error("ConfigError should not match ErrDecode")
		}
	})
}
