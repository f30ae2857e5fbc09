// Package id generates opaque unique identifiers for stored records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes used by the application. Keeping them in one place makes stored
// ids self-describing when inspecting the database.
const (
	PrefixUser = "user"
	PrefixSong = "song"
)

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "song-V1StGXR8_Z5jdHi6B-myT").
//
// A random 21-character token replaces clock-derived ids so that two records
// created within the same clock tick can never collide.
//
// Returns an error if the system has insufficient entropy for secure random
// generation.
func Generate(prefix string) (string, error) {
	token, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + token, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use only where failure should crash the program, such as seeding tools.
func MustGenerate(prefix string) string {
	token, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return token
}
