package eligibility

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDomain means the email does not belong to the institute domain.
var ErrInvalidDomain = errors.New("email is outside the institute domain")

// Validate checks, case-insensitively, that email ends with @<domain>.
// It is a pure predicate; callers decide how to surface the failure.
func Validate(email, domain string) error {
	suffix := "@" + strings.ToLower(strings.TrimPrefix(domain, "@"))
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), suffix) {
		return fmt.Errorf("%w: only %s addresses are allowed", ErrInvalidDomain, suffix)
	}
	return nil
}

// LocalPart returns the part of email before '@', used to derive a
// display handle for directory-provisioned accounts.
func LocalPart(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
