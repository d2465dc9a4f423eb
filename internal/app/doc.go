// SPDX-License-Identifier: MIT

// Package app wires the byteland binary together: it owns the logger, opens
// the input and dispatches either to the experiment processor or to the tree
// generator.
package app
