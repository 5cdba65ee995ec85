package auth

import (
	"regexp"

	"xoadvisor/utils"
)

var (
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	numberPattern = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	var msg string
	switch {
	case len(pw) < 8:
		msg = "Password must be at least 8 characters long"
	case !upperPattern.MatchString(pw):
		msg = "Password must include at least one uppercase letter"
	case !lowerPattern.MatchString(pw):
		msg = "Password must include at least one lowercase letter"
	case !numberPattern.MatchString(pw):
		msg = "Password must include at least one number"
	default:
		return nil
	}
	return utils.NewFieldError("password", msg)
}
