// SPDX-License-Identifier: MIT
// Package iterative defines the closed enumerations used by the solver:
// Method, Norm, Recording and Status, together with their parsers for
// dynamic boundaries (CLI flags, problem files).

package iterative

import (
	"fmt"
	"strings"
)

// Method selects the stationary scheme x_{k+1} = T x_k + C.
type Method int

const (
	// Jacobi: T = D⁻¹(L+U), C = D⁻¹b.
	Jacobi Method = iota

	// GaussSeidel: T = (D−L)⁻¹U, C = (D−L)⁻¹b.
	GaussSeidel

	// SOR (successive over-relaxation): T = (D−wL)⁻¹((1−w)D + wU), C = w(D−wL)⁻¹b.
	SOR
)

var methodNames = [...]string{
	Jacobi:      "jacobi",
	GaussSeidel: "gauss-seidel",
	SOR:         "sor",
}

// Valid reports whether m is one of the three recognized methods.
func (m Method) Valid() bool { return m >= Jacobi && m <= SOR }

// String returns the canonical lower-case name ("jacobi", "gauss-seidel", "sor").
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMethod.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// ParseMethod maps a user-facing name onto a Method.
// Accepted (case-insensitive): "jacobi" | "0", "gauss-seidel" | "gauss_seidel" |
// "gaussseidel" | "seidel" | "gs" | "1", "sor" | "2".
// Anything else yields ErrInvalidMethod.
func ParseMethod(s string) (Method, error) {
	switch normalize(s) {
	case "jacobi", "0":
		return Jacobi, nil
	case "gauss-seidel", "gaussseidel", "seidel", "gs", "1":
		return GaussSeidel, nil
	case "sor", "2":
		return SOR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Norm selects the vector norm of the step x_{k+1} − x_k.
type Norm int

const (
	// Euclidean: sqrt(Σ (next[i]−prev[i])²).
	Euclidean Norm = iota

	// Infinity: max_i |next[i]−prev[i]|.
	Infinity
)

// Valid reports whether n is a recognized norm.
func (n Norm) Valid() bool { return n == Euclidean || n == Infinity }

// String returns "euclidean" or "infinity".
func (n Norm) String() string {
	switch n {
	case Euclidean:
		return "euclidean"
	case Infinity:
		return "infinity"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Norm) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNorm, int(n))
	}

	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseNorm.
func (n *Norm) UnmarshalText(text []byte) error {
	parsed, err := ParseNorm(string(text))
	if err != nil {
		return err
	}
	*n = parsed

	return nil
}

// ParseNorm accepts "euclidean" | "l2" | "2" and "infinity" | "inf" | "max".
func ParseNorm(s string) (Norm, error) {
	switch normalize(s) {
	case "euclidean", "l2", "2":
		return Euclidean, nil
	case "infinity", "inf", "max", "linf":
		return Infinity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNorm, s)
	}
}

// Recording selects which iterate a Record carries.
//
//   - RecordPreUpdate: the iterate x_k that entered iteration k, paired with the
//     error ‖x_{k+1} − x_k‖ it produced. Record 0 therefore holds x0.
//   - RecordPostUpdate: the iterate x_{k+1} produced by iteration k.
//
// The convention is applied identically for every Method.
type Recording int

const (
	// RecordPreUpdate is the default.
	RecordPreUpdate Recording = iota

	// RecordPostUpdate records the freshly computed iterate.
	RecordPostUpdate
)

// Valid reports whether r is a recognized recording mode.
func (r Recording) Valid() bool { return r == RecordPreUpdate || r == RecordPostUpdate }

// String returns "pre-update" or "post-update".
func (r Recording) String() string {
	switch r {
	case RecordPreUpdate:
		return "pre-update"
	case RecordPostUpdate:
		return "post-update"
	default:
		return fmt.Sprintf("Recording(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Recording) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRecording, int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseRecording.
func (r *Recording) UnmarshalText(text []byte) error {
	parsed, err := ParseRecording(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// ParseRecording accepts "pre-update" | "pre" and "post-update" | "post".
func ParseRecording(s string) (Recording, error) {
	switch normalize(s) {
	case "pre-update", "preupdate", "pre":
		return RecordPreUpdate, nil
	case "post-update", "postupdate", "post":
		return RecordPostUpdate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecording, s)
	}
}

// Status is the terminal state of a solve.
type Status int

const (
	// Exhausted: the iteration budget ran out before the tolerance was met.
	Exhausted Status = iota

	// Converged: the last step error is <= tolerance.
	Converged
)

// String returns "converged" or "exhausted".
func (s Status) String() string {
	if s == Converged {
		return "converged"
	}

	return "exhausted"
}

// normalize lower-cases, trims and maps '_' and ' ' to '-'.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
