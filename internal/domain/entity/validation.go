package entity

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

const (
	// maxNameLength matches the varchar(15) columns backing
	// alarm_name, bookmark_name, box_name and nickname.
	maxNameLength = 15

	// maxURLLength matches the varchar(2083) url column.
	maxURLLength = 2083
)

// ValidateName checks a required name-like field against the column limit.
// Lengths are counted in runes to match varchar(n) character semantics.
func ValidateName(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxNameLength),
		}
	}
	return nil
}

// ValidateURL validates a bookmark URL before persistence.
// It enforces the column length limit and requires a well-formed
// http or https URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "is required"}
	}

	if utf8.RuneCountInString(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "is not a valid URL"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "must have a valid host"}
	}

	return nil
}
