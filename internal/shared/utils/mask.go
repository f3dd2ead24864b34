package utils

import "strings"

// MaskEmail hides the local part for logs: "jane@acme.io" -> "j***@acme.io".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}
