// Package preflight provides readiness checks for the filesystem paths and
// the isolation API a processing run depends on.
//
// The deps command runs the full set to surface problems before any video is
// touched; failing a check never blocks a run on its own, the pipeline
// surfaces its own errors when something is genuinely broken.
package preflight
