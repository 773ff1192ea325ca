// Package apperr carries the failure taxonomy shared by the lifecycle
// manager and the route handlers. Handlers never branch on error strings;
// they branch on these kinds.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindStoreUnavailable
	KindPersistence
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Msg: what + " not found"}
}

func StoreUnavailable(op string, err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Msg: "object store " + op + " failed", Err: err}
}

func Persistence(op string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: op + " failed", Err: err}
}

// KindOf classifies any error; non-taxonomy errors map to KindUnknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// StatusOf maps the taxonomy onto HTTP status codes per the route boundary
// contract: validation 400, not found 404, everything else 500.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// IsUniqueViolation reports a Postgres 23505 so handlers can answer 400
// instead of a bare persistence failure. GORM surfaces the driver error
// wrapped, so fall back to the SQLSTATE text when the type assert misses.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key")
}
