// SPDX-License-Identifier: MIT

package unify

// Contract exposes edge contraction to the black-box tests.
func (g *Graph) Contract(keep, absorb int) error { return g.contract(keep, absorb) }

// BestPartner exposes the partner rule to the black-box tests.
func (g *Graph) BestPartner(id int) (int, bool) { return g.bestPartner(id) }
