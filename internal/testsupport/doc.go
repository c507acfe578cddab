// Package testsupport provides shared helpers for constructing test
// configurations and filesystem fixtures.
package testsupport
