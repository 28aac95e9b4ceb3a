package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"clinic-portal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrSpecialtyNotFound     = errors.New("specialty not found")
	ErrHMONotFound           = errors.New("hmo not found")
	ErrEmailExists           = errors.New("email already exists")
)

// ValidationError lists every rejected field of a request, keyed by JSON path.
// It is returned before anything is written.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InternalFault wraps an unexpected failure of Op. Trace holds the goroutine
// stack when the fault was a recovered panic.
type InternalFault struct {
	Op    string
	Err   error
	Trace string
}

func (f *InternalFault) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *InternalFault) Unwrap() error {
	return f.Err
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) merge(fields map[string]string) {
	for field, message := range fields {
		e.add(field, message)
	}
}

// orNil returns nil when no field was rejected.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// fromValidator converts a failed struct validation into a *ValidationError.
func fromValidator(v *validator.CustomValidator, err error) error {
	verr := newValidationError()
	verr.merge(v.FormatValidationErrors(err))
	if len(verr.Fields) == 0 {
		return &InternalFault{Op: "validate request", Err: err}
	}
	return verr
}

// isDuplicateKeyError reports a unique_violation (23505) on a constraint whose
// name contains constraintName.
func isDuplicateKeyError(err error, constraintName string) bool {
	return hasPgCode(err, "23505", constraintName)
}

// isForeignKeyError reports a foreign_key_violation (23503) on a constraint
// whose name contains constraintName.
func isForeignKeyError(err error, constraintName string) bool {
	return hasPgCode(err, "23503", constraintName)
}

func hasPgCode(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
}
