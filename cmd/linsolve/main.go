// SPDX-License-Identifier: MIT

// Command linsolve solves square linear systems described in YAML problem files,
// either iteratively (Jacobi, Gauss-Seidel, SOR) or by Gaussian elimination.
//
//	linsolve solve problem.yaml --method sor --relaxation 1.25 --norm infinity
//	linsolve direct problem.yaml --pivoting total
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
