// Package analyzer wraps the external analysis command. It owns argv
// construction, sequential execution over a file list, and the capture of
// each child's stdout and stderr. It never interprets what the analyzer
// prints; that text flows into the report untouched.
package analyzer
