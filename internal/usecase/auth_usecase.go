// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// VerifyInput carries the raw, unsanitized credentials exactly as the
// caller received them. Sanitization happens inside the usecase; it is
// a security boundary, not a delivery concern.
type VerifyInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// VerifyOutput is the whole result of a verification attempt. Every
// failure mode collapses into Accepted == false; there is no error
// channel past this boundary.
type VerifyOutput struct {
	Accepted bool
}

// AuthTypeLine renders the decision as the textual attribute line the
// external RADIUS server consumes.
func (o *VerifyOutput) AuthTypeLine() string {
	if o.Accepted {
		return "Auth-Type := Accept"
	}

	return "Auth-Type := Reject"
}

// ExitCode renders the decision as the process exit status of the
// authenticate command: 0 for Accept, 1 for Reject.
func (o *VerifyOutput) ExitCode() int {
	if o.Accepted {
		return 0
	}

	return 1
}

// AuthUsecase is the credential verification contract shared by the web
// process and the RADIUS-invoked authenticate command. Both must agree
// byte-for-byte on hashing and storage format, which is why they share
// this one implementation rather than each carrying their own.
type AuthUsecase interface {
	// Verify decides Accept or Reject for a raw credential pair. It never
	// returns an error: infrastructure faults, malformed input and plain
	// mismatches all resolve to Reject, each with its own audit log line.
	Verify(ctx context.Context, input *VerifyInput) *VerifyOutput
}
