// Package app is the composition root. It owns the validated run
// configuration, builds the application's isolated logger, and drives the
// sweep pipeline from discovery through to the written report.
package app
