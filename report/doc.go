// SPDX-License-Identifier: MIT

// Package report renders an iterative.Result for humans and machines.
//
// The solver never prints: it returns a structured Result whose History is the
// complete ordered trace of the run. This package is the optional presentation
// collaborator on top of it:
//
//   - Summary: one line, "<x> is an approximation with a tolerance of <err>"
//     or "failed within <n> iterations".
//   - Text: an aligned table with columns n | x1..xN | Error.
//   - Markdown: the same table as GitHub-flavoured Markdown.
//   - Pretty: the Markdown table rendered for a terminal through glamour.
//   - JSON: the whole Result; non-finite floats are emitted as strings
//     ("+Inf", "-Inf", "NaN") because JSON numbers cannot hold them.
package report
