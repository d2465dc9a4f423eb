// SPDX-License-Identifier: MIT

// Package cli turns command-line arguments, environment variables and an
// optional .env file into a validated app.Config.
//
// Precedence, highest first: explicit flags, process environment, the .env
// file, built-in defaults.
package cli
