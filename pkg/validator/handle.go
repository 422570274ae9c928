package validator

import (
	"regexp"
	"strings"

	"igstats/pkg/errors"
)

// MaxHandleLength is the longest handle Instagram accepts
const MaxHandleLength = 30

// handlePattern: first character is a letter, digit or underscore; the rest may also contain periods
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.]{0,29}$`)

// ValidateHandle checks a candidate handle against the Instagram username format
func ValidateHandle(handle string) error {
	if handle == "" {
		return errors.EmptyInput("handle cannot be empty")
	}

	if !handlePattern.MatchString(handle) {
		return errors.InvalidFormat("invalid handle format")
	}

	return nil
}

// IsValidHandle reports whether ValidateHandle accepts handle
func IsValidHandle(handle string) bool {
	return ValidateHandle(handle) == nil
}

// NormalizeHandle strips surrounding whitespace, a leading @ and trailing slashes
// from user input. It does not validate.
func NormalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, "@")
	handle = strings.TrimRight(handle, "/ ")
	return handle
}
