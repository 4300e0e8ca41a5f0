package security

// ValidatePasswordPolicy checks a candidate password against the portal
// policy: at least 8 characters, at least one ASCII digit, at least one
// ASCII letter. The first failing rule's reason is returned.
//
// This is intentionally a weak policy. A production deployment would add
// entropy or breach-list checks on top.
func ValidatePasswordPolicy(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters."
	}
	var hasDigit, hasLetter bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}
	if !hasDigit {
		return false, "Password must include at least one number."
	}
	if !hasLetter {
		return false, "Password must include letters."
	}
	return true, ""
}
