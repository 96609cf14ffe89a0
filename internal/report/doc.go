// Package report defines the per-file result record and the JSON report
// written at the end of a sweep. The report is the tool's only durable
// output: a plain array of records, one per analyzed file, in discovery
// order.
package report
