// Package model defines the domain models for murmur.
package model

// Database keys.
const (
	// KeyConfessions holds the serialized entry sequence.
	KeyConfessions = "confessions"
)
