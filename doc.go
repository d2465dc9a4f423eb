// SPDX-License-Identifier: MIT

// Package byteland counts how many synchronized union rounds a kingdom of
// cities needs before every city has been merged into one.
//
// What is in the module?
//
//	Cities and roads form a tree, given as a parent list. In every round each
//	city may unite with at most one neighbouring city, preferring the
//	neighbour with the fewest roads. The answer for an experiment is the
//	number of rounds until a single city remains.
//
// Under the hood, everything is organized under these packages:
//
//	unify/        Graph, Relation and the round engine (Unify, Run)
//	experiment/   input validation, the line protocol (Process) and Inspect diagnostics
//	treegen/      deterministic tree fixtures: path, star, binary, caterpillar, random
//	cmd/byteland  command-line front end: reads a document or generates one
//	internal/     app wiring, flag/env parsing and context logging
//
// Quick ASCII example:
//
//	0───1───2───3
//
//	a path of four cities: round one unites 0+1 and 2+3, round two unites
//	the two survivors, so the answer is 2.
//
//	go install github.com/katalvlaran/byteland/cmd/byteland@latest
package byteland
