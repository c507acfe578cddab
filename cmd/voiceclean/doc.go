// Package main hosts the voiceclean CLI entrypoint and command graph.
//
// The Cobra-based command tree wires configuration resolution, logging setup,
// and API key handling around the processing pipeline. Keep this package
// lean: add new functionality to the internal packages first, then surface it
// through dedicated commands or flags here.
package main
