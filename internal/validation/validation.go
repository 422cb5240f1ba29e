package validation

import (
	"fmt"
	"strings"

	"github.com/moodlogapp/moodlog/internal/constants"
)

// Validation failures are detected locally and surfaced inline; nothing
// here ever reaches the server.

// EntryText checks the diary body before submission.
func EntryText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("entry text cannot be empty")
	}
	return nil
}

// MoodScore checks a user-supplied mood rating. A zero value means the
// user skipped the rating, which is allowed.
func MoodScore(score int) error {
	if score == 0 {
		return nil
	}
	if score < constants.MoodScoreMin || score > constants.MoodScoreMax {
		return fmt.Errorf("mood score must be between %d and %d", constants.MoodScoreMin, constants.MoodScoreMax)
	}
	return nil
}

// Email does a minimal shape check; the server is authoritative.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// Registration checks a sign-up form, including the confirm-password
// mismatch case.
func Registration(name, email, password, confirm string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if err := Email(email); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
