// Package main hosts the tvscript CLI entrypoint and command graph.
//
// The Cobra-based command tree reads transcripts that a scraper has
// already persisted to disk and answers questions about them: per-season
// statistics, speaker breakdowns, page cache maintenance, and
// configuration scaffolding. It centralizes configuration resolution and
// show hydration so subcommands can focus on presentation.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags
// here.
package main
