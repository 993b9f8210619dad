package github

import (
	"regexp"

	"github.com/pixelquest/rpgcard/pkg/errors"
)

// GitHub usernames: 1-39 characters, alphanumeric with single embedded
// hyphens, never starting or ending with a hyphen.
var validUsername = regexp.MustCompile(`^[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*$`)

// maxUsernameLen is the upstream's username length limit.
const maxUsernameLen = 39

// ValidateUsername validates a GitHub username against the platform's
// username grammar. Violations are rejected locally with
// ErrCodeInvalidUsername; no network call is ever made for an invalid name.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New(errors.ErrCodeInvalidUsername, "username is required")
	}
	if len(username) > maxUsernameLen {
		return errors.New(errors.ErrCodeInvalidUsername,
			"username too long: %d characters (max %d)", len(username), maxUsernameLen)
	}
	if !validUsername.MatchString(username) {
		return errors.New(errors.ErrCodeInvalidUsername,
			"invalid username %q: must be alphanumeric with single embedded hyphens", username)
	}
	return nil
}
