// Package textutil provides small text helpers shared by the play-by-play
// parsing and scorebook packages.
//
// The helpers stay deliberately tiny: token extraction for runner and
// substitute names pulled out of free-text play sentences, and digit
// filtering for inning labels that arrive with half-inning prefixes or
// ordinal suffixes.
package textutil
