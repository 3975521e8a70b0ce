// SPDX-License-Identifier: MIT

package linsolve

// Version is the semantic version of the module and the linsolve command.
const Version = "0.1.0"
