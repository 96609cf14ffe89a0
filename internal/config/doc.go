// Package config loads the optional HCL sweep file and carries the built-in
// defaults for a sweep. A sweep file describes one analysis run: the
// analyzer command line, the file suffix to match, and where the report
// goes. Flags layered on top by the cli package always win over file values.
package config
