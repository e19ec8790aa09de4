package utils

import "regexp"

// Two-part local@domain.tld shape, deliberately short of full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether email has a localpart@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
