// Package mocks provides hand-written mock implementations of the
// generation interfaces for use in tests across packages.
package mocks
