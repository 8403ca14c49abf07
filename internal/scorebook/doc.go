// Package scorebook turns play descriptions into scorebook shorthand and
// accumulates them into a per-inning, per-batter grid.
//
// Classification is an ordered rule table over uppercased play clauses:
// keyword triggers run top to bottom and the first match decides the
// shorthand ("Single" -> "1B", "Strikeout Looking" -> "K*"). Fielding
// positions resolve to scorebook digits (SS -> 6) and hyphenated tokens
// become assist chains ("SS-2B-1B" -> "6-4-3").
//
// The Board folds classified events together with RBI, stolen-base, and
// caught-stealing credits, tracking batter order by first appearance so the
// rendered grid is stable. Plays that match no rule accumulate as blank
// cells rather than errors.
package scorebook
