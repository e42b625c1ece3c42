// Package tests contains test utilities and test files for the
// contact backend.
package tests
