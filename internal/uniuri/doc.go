// Package uniuri generates random strings for seeded passwords and session ids.
package uniuri
