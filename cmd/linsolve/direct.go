// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/internal/problem"
)

func newDirectCmd(a *app) *cobra.Command {
	var pivoting string
	cmd := &cobra.Command{
		Use:   "direct <problem.yaml>",
		Short: "Solve the system by Gaussian elimination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(args[0])
			if err != nil {
				return err
			}
			piv, err := p.DirectPivoting()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pivoting") {
				if piv, err = direct.ParsePivoting(pivoting); err != nil {
					return err
				}
			}
			A, err := p.Matrix()
			if err != nil {
				return err
			}
			a.log.Debug("eliminating", "problem", p.Name, "n", A.Rows(), "pivoting", piv.String())

			x, err := direct.Solve(A, p.RHS(), piv)
			if err != nil {
				return err
			}

			parts := make([]string, len(x))
			for i, v := range x {
				parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "x = [%s] (pivoting: %s)\n", strings.Join(parts, " "), piv)
			return err
		},
	}
	cmd.Flags().StringVarP(&pivoting, "pivoting", "p", "none", "none, partial or total")

	return cmd
}
