// Package main hosts the scorecard CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into play-by-play
// parsing, scorebook accumulation, grid rendering, clipboard and workbook
// export, and configuration scaffolding. It centralizes configuration
// resolution and per-run logger construction so subcommands stay focused on
// user experience.
//
// The heavy lifting belongs in the internal packages; commands here resolve
// flags against config, call into those packages, and shape the output.
package main
