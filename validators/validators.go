package validators

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegex = regexp.MustCompile(`^(1\s|1|)?((\(\d{3}\))|\d{3})(-|\s)?(\d{3})(-|\s)?(\d{4})$`)
)

// IsPresent reports whether a string value carries content after trimming
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsNonEmptyBody reports whether a parsed request body has at least one key
func IsNonEmptyBody(body map[string]interface{}) bool {
	return len(body) > 0
}

// IsWellFormedID reports whether id is a 24-hex-character object identifier
func IsWellFormedID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// IsWellFormedEmail validates an email address shape
func IsWellFormedEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsWellFormedPhone validates a NANP phone number shape
func IsWellFormedPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// IsValidTitle reports whether title is one of the allowed honorifics
func IsValidTitle(title string) bool {
	switch strings.TrimSpace(title) {
	case "Mr", "Mrs", "Miss":
		return true
	}
	return false
}
