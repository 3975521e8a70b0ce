// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/internal/problem"
	"github.com/katalvlaran/linsolve/iterative"
)

// errNotConverged is returned by `solve --strict` when the budget is exhausted.
var errNotConverged = errors.New("linsolve: iteration budget exhausted before convergence")

// app carries the state shared by subcommands of one invocation.
type app struct {
	log      *slog.Logger
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "linsolve",
		Short: "Solve square linear systems A x = b",
		Long: `linsolve solves A x = b with stationary iterative methods (Jacobi,
Gauss-Seidel, SOR) or with Gaussian elimination (no, partial or total pivoting).
Systems are read from YAML problem files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			a.log = logging.New(stderr, level, a.noColor || !logging.ColorEnabled(stderr))
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newSolveCmd(a), newDirectCmd(a), newVersionCmd())

	return root
}

// exitCode maps errors onto process exit codes: 2 for invalid input, 3 for
// a strict-mode non-convergence, 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errNotConverged):
		return 3
	case iterative.IsSetupError(err), errors.Is(err, problem.ErrInvalidProblem):
		return 2
	default:
		return 1
	}
}
