// Package playbyplay parses Baseball-Reference play-by-play CSV exports.
//
// An export is pasted or saved text: prose lines first, then a fixed
// twelve-column CSV table anchored by a known header line. Parse locates
// that header, keeps the four columns the scorebook needs (inning, batting
// team, batter, play description), cleans batter names down to surnames,
// and scans the whole input for pinch-hit substitution sentences so later
// accumulation can credit events to the original lineup slot.
//
// Everything past the header degrades quietly: short records are dropped
// and malformed substitution sentences are skipped. Only a missing header
// fails the parse.
package playbyplay
