// SPDX-License-Identifier: MIT

package experiment

import (
	"github.com/pkg/errors"
)

// ErrValidation is the category shared by every input validation error.
var ErrValidation = errors.New("experiment: invalid input")

// validationError is a sentinel that also matches ErrValidation.
type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }

// Is reports membership in the ErrValidation category.
func (e *validationError) Is(target error) bool { return target == ErrValidation }

// Validation sentinels. Each satisfies errors.Is(err, ErrValidation).
var (
	// ErrCityCount indicates a city count outside [MinCities, MaxCities].
	ErrCityCount error = &validationError{"experiment: city count out of range"}

	// ErrRelationCount indicates a parent list whose length is not cities-1.
	ErrRelationCount error = &validationError{"experiment: wrong number of relations"}

	// ErrBadToken indicates a token that is not an integer.
	ErrBadToken error = &validationError{"experiment: value is not an integer"}

	// ErrParentRange indicates a parent id outside [0, cities-1].
	ErrParentRange error = &validationError{"experiment: parent out of range"}

	// ErrSelfParent indicates a city listed as its own parent.
	ErrSelfParent error = &validationError{"experiment: city cannot be its own parent"}

	// ErrAdjacencySize indicates an adjacency list whose length is not the city count.
	ErrAdjacencySize error = &validationError{"experiment: adjacency size does not match city count"}

	// ErrExperimentCount indicates an experiment count outside [0, limit).
	ErrExperimentCount error = &validationError{"experiment: experiment count out of range"}
)

// ErrNoAdjacency is returned by MinUnionCount before any adjacency was set.
var ErrNoAdjacency = errors.New("experiment: adjacency is not set yet")
