package contact

// IsSpam reports whether the hidden honeypot field was filled in. People never
// see the field, so any value means an automated sender.
func IsSpam(honeypot string) bool {
	return len(honeypot) > 0
}
