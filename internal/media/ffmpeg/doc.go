// Package ffmpeg wraps the ffmpeg binary for the two subprocess stages of
// the pipeline: demuxing audio out of a video container and remuxing cleaned
// audio back in. Command execution goes through an injectable Executor so
// tests never spawn real tools.
package ffmpeg
