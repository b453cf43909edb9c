package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindParse       Kind = "parse"
	KindInvalid     Kind = "invalid"
	KindUnsupported Kind = "unsupported"
	KindUnsafePath  Kind = "unsafe_path"
	KindWrite       Kind = "write"
)

type Error struct {
	Kind Kind
	// Key names the offending style attribute, if any.
	Key string
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.SafeMessage)
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Key != "" {
		return e.Key + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindNotFound:
		return "Style file not found."
	case KindParse:
		return "Style file could not be parsed."
	case KindInvalid:
		return "Invalid attribute value."
	case KindUnsupported:
		return "Unsupported style file format."
	case KindUnsafePath:
		return "Refusing to write the style file through a symlink."
	case KindWrite:
		return "Style file could not be written."
	default:
		return "Style error."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

// Invalid reports a malformed value for a single attribute key.
func Invalid(key, safeMessage string) error {
	err := New(KindInvalid, safeMessage, nil).(*Error)
	err.Key = key
	return err
}

func NotFound(err error) error {
	return New(KindNotFound, "", err)
}

func Parse(err error) error {
	return New(KindParse, "", err)
}

func Unsupported(safeMessage string) error {
	return New(KindUnsupported, safeMessage, nil)
}

// UnsafePath reports a write target that resolves through a link.
func UnsafePath(safeMessage string) error {
	return New(KindUnsafePath, safeMessage, nil)
}

func Write(safeMessage string, err error) error {
	return New(KindWrite, safeMessage, err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

func IsInvalid(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindInvalid
}
