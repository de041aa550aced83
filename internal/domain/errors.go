package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidIdentifier ErrorKind = "INVALID_IDENTIFIER"
	KindCycleDetected     ErrorKind = "CYCLE_DETECTED"
	KindSelfDependency    ErrorKind = "SELF_DEPENDENCY"
	KindDuplicateEdge     ErrorKind = "DUPLICATE_EDGE"
	KindInvalidTransition ErrorKind = "INVALID_TRANSITION"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindConflict          ErrorKind = "CONFLICT"
)

// Error is a typed failure carrying the kind and the identifiers involved,
// so the transport layer can map it to a status code without string matching.
type Error struct {
	Kind   ErrorKind
	Entity string // e.g. "task", "issue", "dependency"
	ID     string
	Msg    string
}

func (e *Error) Error() string {
	switch {
	case e.ID != "" && e.Msg != "":
		return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, e.Msg)
	case e.ID != "":
		return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, string(e.Kind))
	default:
		return fmt.Sprintf("%s: %s", e.Entity, e.Msg)
	}
}

// NewError builds a typed domain error.
func NewError(kind ErrorKind, entity, id, msg string) *Error {
	return &Error{Kind: kind, Entity: entity, ID: id, Msg: msg}
}

// NotFound reports the absence of a referenced entity.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Msg: "not found"}
}

// Conflict reports an operation blocked by existing related records.
func Conflict(entity, id, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Msg: msg}
}

// KindOf unwraps err and returns its ErrorKind, or "" if err is not a
// domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err (or anything it wraps) is a domain error of
// the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
