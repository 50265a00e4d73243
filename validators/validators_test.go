package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPresent(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain value", "hello", true},
		{"padded value", "  hello  ", true},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
		{"tab and newline", "\t\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPresent(tt.value))
		})
	}
}

func TestIsNonEmptyBody(t *testing.T) {
	assert.False(t, IsNonEmptyBody(nil))
	assert.False(t, IsNonEmptyBody(map[string]interface{}{}))
	assert.True(t, IsNonEmptyBody(map[string]interface{}{"title": "Mr"}))
}

func TestIsWellFormedID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid id", "64f1c0a9e13b4a2d9c8b4567", true},
		{"uppercase hex", "64F1C0A9E13B4A2D9C8B4567", true},
		{"too short", "64f1c0a9e13b4a2d9c8b456", false},
		{"too long", "64f1c0a9e13b4a2d9c8b45678", false},
		{"non hex", "zzf1c0a9e13b4a2d9c8b4567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWellFormedID(tt.id))
		})
	}
}

func TestIsWellFormedEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"john.doe@example.co",
		"john-doe@mail.example.org",
		"  padded@example.com  ",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@.com",
		"user@example.commmm",
	}

	for _, email := range valid {
		assert.True(t, IsWellFormedEmail(email), "expected valid: %q", email)
	}
	for _, email := range invalid {
		assert.False(t, IsWellFormedEmail(email), "expected invalid: %q", email)
	}
}

func TestIsWellFormedPhone(t *testing.T) {
	valid := []string{
		"1234567890",
		"123-456-7890",
		"(123) 456-7890",
		"1 123 456 7890",
		"11234567890",
	}
	invalid := []string{
		"",
		"12345",
		"123456789012",
		"abc-def-ghij",
	}

	for _, phone := range valid {
		assert.True(t, IsWellFormedPhone(phone), "expected valid: %q", phone)
	}
	for _, phone := range invalid {
		assert.False(t, IsWellFormedPhone(phone), "expected invalid: %q", phone)
	}
}

func TestIsValidTitle(t *testing.T) {
	assert.True(t, IsValidTitle("Mr"))
	assert.True(t, IsValidTitle("Mrs"))
	assert.True(t, IsValidTitle("Miss"))
	assert.True(t, IsValidTitle(" Mr "))
	assert.False(t, IsValidTitle("Dr"))
	assert.False(t, IsValidTitle("mr"))
	assert.False(t, IsValidTitle(""))
}
