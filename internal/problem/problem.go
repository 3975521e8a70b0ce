// SPDX-License-Identifier: MIT

// Package problem loads linear-system problem files.
//
// A problem file is YAML describing A, b, an optional initial guess and the
// solver settings; every setting has a default so a file may carry only a and b:
//
//	name: diagonally-dominant-2x2
//	a:
//	  - [4, 1]
//	  - [2, 3]
//	b: [1, 2]
//	x0: [0, 0]
//	tolerance: 1e-6
//	max_iterations: 100
//	method: jacobi
//	norm: euclidean
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
)

// Defaults applied to omitted fields.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultMethod        = "jacobi"
)

// ErrInvalidProblem wraps every validation failure of a problem file.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Problem is the decoded file. Pointer fields distinguish "omitted" from zero.
type Problem struct {
	Name          string      `yaml:"name"`
	A             [][]float64 `yaml:"a"`
	B             []float64   `yaml:"b"`
	X0            []float64   `yaml:"x0"`
	Tolerance     *float64    `yaml:"tolerance"`
	MaxIterations *int        `yaml:"max_iterations"`
	Method        string      `yaml:"method"`
	Relaxation    *float64    `yaml:"relaxation"`
	Norm          string      `yaml:"norm"`
	Recording     string      `yaml:"recording"`
	Pivoting      string      `yaml:"pivoting"`
}

// Load reads and decodes the problem file at path.
func Load(path string) (*Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Decode reads one YAML document, rejects unknown keys and validates it.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks shapes and that every enum field parses.
func (p *Problem) Validate() error {
	n := len(p.A)
	if n == 0 {
		return fmt.Errorf("%w: a is empty", ErrInvalidProblem)
	}
	for i, row := range p.A {
		if len(row) != n {
			return fmt.Errorf("%w: a row %d has %d entries, want %d", ErrInvalidProblem, i, len(row), n)
		}
	}
	if len(p.B) != n {
		return fmt.Errorf("%w: b has %d entries, want %d", ErrInvalidProblem, len(p.B), n)
	}
	if p.X0 != nil && len(p.X0) != n {
		return fmt.Errorf("%w: x0 has %d entries, want %d", ErrInvalidProblem, len(p.X0), n)
	}
	if _, err := p.IterativeMethod(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if _, err := p.SolverOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if _, err := direct.ParsePivoting(p.Pivoting); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	return nil
}

// Matrix returns A as a fresh *matrix.Dense.
func (p *Problem) Matrix() (*matrix.Dense, error) {
	return matrix.NewFromRows(p.A)
}

// RHS returns a copy of b.
func (p *Problem) RHS() []float64 {
	out := make([]float64, len(p.B))
	copy(out, p.B)

	return out
}

// InitialGuess returns a copy of x0, or zeros when x0 is omitted.
func (p *Problem) InitialGuess() []float64 {
	out := make([]float64, len(p.A))
	copy(out, p.X0)

	return out
}

// Tol returns the tolerance or DefaultTolerance.
func (p *Problem) Tol() float64 {
	if p.Tolerance == nil {
		return DefaultTolerance
	}

	return *p.Tolerance
}

// Budget returns max_iterations or DefaultMaxIterations.
func (p *Problem) Budget() int {
	if p.MaxIterations == nil {
		return DefaultMaxIterations
	}

	return *p.MaxIterations
}

// IterativeMethod parses method (DefaultMethod when empty).
func (p *Problem) IterativeMethod() (iterative.Method, error) {
	if p.Method == "" {
		return iterative.ParseMethod(DefaultMethod)
	}

	return iterative.ParseMethod(p.Method)
}

// DirectPivoting parses pivoting (none when empty).
func (p *Problem) DirectPivoting() (direct.Pivoting, error) {
	return direct.ParsePivoting(p.Pivoting)
}

// SolverOptions translates relaxation, norm and recording into iterative options.
// Omitted fields are left to the iterative defaults.
func (p *Problem) SolverOptions() ([]iterative.Option, error) {
	var opts []iterative.Option
	if p.Relaxation != nil {
		opts = append(opts, iterative.WithRelaxation(*p.Relaxation))
	}
	if p.Norm != "" {
		n, err := iterative.ParseNorm(p.Norm)
		if err != nil {
			return nil, err
		}
		opts = append(opts, iterative.WithNorm(n))
	}
	if p.Recording != "" {
		r, err := iterative.ParseRecording(p.Recording)
		if err != nil {
			return nil, err
		}
		opts = append(opts, iterative.WithRecording(r))
	}

	return opts, nil
}
