// Package app runs plank layouts from the command line: it resolves the
// layouts to compute from flags, layout files or a room list, runs the
// engine for each, prints a summary and writes the requested exports.
package app
