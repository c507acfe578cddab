// Package elevenlabs talks to the ElevenLabs audio isolation API. The
// endpoint receives a multipart audio upload and returns the same audio with
// background noise removed, keeping speech intact.
package elevenlabs
