package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Password policy clause messages.
const (
	msgPasswordTooShort  = "must be at least 6 characters long"
	msgPasswordTooLong   = "must be at most 72 bytes long"
	msgPasswordUppercase = "must contain at least one uppercase letter"
	msgPasswordDigit     = "must contain at least one digit"
)

// passwordPolicyError carries every clause a password failed.
type passwordPolicyError struct {
	clauses []string
}

func (e passwordPolicyError) Error() string {
	return strings.Join(e.clauses, "; ")
}

// checkPassword evaluates all clauses of the password policy. It never stops
// at the first failure.
func checkPassword(value any) error {
	password, _ := value.(string)

	var clauses []string
	if utf8.RuneCountInString(password) < MinPasswordLength {
		clauses = append(clauses, msgPasswordTooShort)
	}
	if len(password) > MaxPasswordBytes {
		clauses = append(clauses, msgPasswordTooLong)
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		clauses = append(clauses, msgPasswordUppercase)
	}
	if !hasDigit {
		clauses = append(clauses, msgPasswordDigit)
	}

	if len(clauses) == 0 {
		return nil
	}
	return passwordPolicyError{clauses: clauses}
}

// equalTo checks that a string field matches str.
func equalTo(str string) func(value any) error {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return errMustMatchPassword
		}
		return nil
	}
}
