// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Student is the single flat credential record of the captive portal.
// Both the web process and the RADIUS-invoked authenticate command read
// the same rows, so the stored PasswordHash format is a shared contract.
type Student struct {
	ID           uint      // Primary key of the credential row.
	Username     string    // Login identifier; case-sensitive, alphanumeric plus underscore, at most 50 chars.
	Email        string    // Optional contact address used for password recovery; unique in practice.
	PasswordHash string    // Digest of the password in the store format (lowercase hex for the legacy scheme).
	CreatedAt    time.Time // Timestamp of when this credential was created.
	UpdatedAt    time.Time // Timestamp of the last modification, including password changes.
}
