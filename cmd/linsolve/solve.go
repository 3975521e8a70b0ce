// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/internal/problem"
	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/report"
)

type solveFlags struct {
	method     string
	relaxation float64
	norm       string
	recording  string
	tol        float64
	maxIter    int
	format     string
	precision  int
	pretty     bool
	style      string
	strict     bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve the system with Jacobi, Gauss-Seidel or SOR",
		Long: `Runs the stationary iteration x(k+1) = T x(k) + C until the step between
successive iterates is within the tolerance or the iteration budget runs out.
Flags override the settings of the problem file. Running out of iterations is
reported, not treated as a failure, unless --strict is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args[0])
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.method, "method", "m", "", "jacobi, gauss-seidel or sor (default from file, else jacobi)")
	fl.Float64VarP(&f.relaxation, "relaxation", "w", iterative.DefaultRelaxation, "SOR relaxation factor")
	fl.StringVar(&f.norm, "norm", "", "convergence norm: euclidean or infinity")
	fl.StringVar(&f.recording, "recording", "", "history convention: pre-update or post-update")
	fl.Float64Var(&f.tol, "tol", problem.DefaultTolerance, "tolerance on the step norm")
	fl.IntVar(&f.maxIter, "max-iter", problem.DefaultMaxIterations, "iteration budget")
	fl.StringVarP(&f.format, "format", "f", "text", "output format: text, markdown or json")
	fl.IntVar(&f.precision, "precision", report.DefaultPrecision, "significant digits per cell")
	fl.BoolVar(&f.pretty, "pretty", false, "render the markdown report for the terminal")
	fl.StringVar(&f.style, "style", report.DefaultStyle, "glamour style used with --pretty")
	fl.BoolVar(&f.strict, "strict", false, "fail when the budget is exhausted")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, path string) error {
	p, err := problem.Load(path)
	if err != nil {
		return err
	}
	fl := cmd.Flags()

	method, err := p.IterativeMethod()
	if err != nil {
		return err
	}
	if fl.Changed("method") {
		if method, err = iterative.ParseMethod(f.method); err != nil {
			return err
		}
	}

	opts, err := p.SolverOptions()
	if err != nil {
		return err
	}
	if fl.Changed("relaxation") {
		opts = append(opts, iterative.WithRelaxation(f.relaxation))
	}
	if fl.Changed("norm") {
		n, err := iterative.ParseNorm(f.norm)
		if err != nil {
			return err
		}
		opts = append(opts, iterative.WithNorm(n))
	}
	if fl.Changed("recording") {
		r, err := iterative.ParseRecording(f.recording)
		if err != nil {
			return err
		}
		opts = append(opts, iterative.WithRecording(r))
	}
	opts = append(opts, iterative.WithLogger(a.log.With("problem", p.Name)))

	tol, budget := p.Tol(), p.Budget()
	if fl.Changed("tol") {
		tol = f.tol
	}
	if fl.Changed("max-iter") {
		budget = f.maxIter
	}

	format, err := report.ParseFormat(f.format)
	if err != nil {
		return err
	}

	A, err := p.Matrix()
	if err != nil {
		return err
	}
	a.log.Debug("solving", "problem", p.Name, "n", A.Rows(), "method", method.String(), "tol", tol, "max_iter", budget)

	res, err := iterative.Solve(A, p.RHS(), p.InitialGuess(), tol, budget, method, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ropts := []report.Option{
		report.WithPrecision(f.precision),
		report.WithStyle(f.style),
		report.WithWordWrap(logging.TerminalWidth(out)),
	}
	if f.pretty {
		err = report.Pretty(out, res, ropts...)
	} else {
		err = report.Write(out, res, format, ropts...)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if f.strict && !res.Converged {
		return fmt.Errorf("%w (%d iterations, error %g)", errNotConverged, res.Iterations, res.Error)
	}

	return nil
}
