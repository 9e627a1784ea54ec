// Package gpgtest provides an in-memory fake of the gpg.Engine capability
// for tests that exercise encryption state machines without a real keyring.
package gpgtest
