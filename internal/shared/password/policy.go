package password

import (
	"net/http"
	"regexp"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/apperror"
	"golang.org/x/crypto/bcrypt"
)

const (
	minLength = 8
	maxLength = 16
)

var (
	// Candidates must be half-width alphanumeric only.
	ErrHalfWidth = apperror.New(
		apperror.CodeInvalidInput,
		"Password must contain only half-width letters and digits",
		http.StatusBadRequest,
	)
	ErrLength = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be between 8 and 16 characters",
		http.StatusBadRequest,
	)
)

var halfWidthPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Validate checks a candidate password against the policy. The character-set
// check runs before the length check, so an empty or non-alphanumeric
// candidate reports ErrHalfWidth even when it is also too short.
func Validate(candidate string) error {
	if !halfWidthPattern.MatchString(candidate) {
		return ErrHalfWidth
	}
	if len(candidate) < minLength || len(candidate) > maxLength {
		return ErrLength
	}
	return nil
}

// Hash returns the bcrypt hash to store. Callers must have run Validate
// first; the raw candidate is never persisted.
func Hash(candidate string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(candidate), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether candidate matches the stored hash.
func Verify(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
