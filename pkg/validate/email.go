// Package validate holds small input validation helpers shared by the API
// layer and the services.
package validate

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether the value looks like a deliverable email address.
// This is the same check applied to supplier contacts and notification
// recipients, so an address that passes here is safe to hand to the mailer.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}
