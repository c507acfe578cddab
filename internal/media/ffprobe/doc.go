// Package ffprobe shells out to ffprobe and exposes the stream and container
// metadata the pipeline needs to decide whether a file is processable.
package ffprobe
