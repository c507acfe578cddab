// Package processor runs a single video through the voice isolation
// pipeline: demux the audio track, send it through the isolation API, remux
// the cleaned audio into a new container, and remove the scratch workspace.
package processor
