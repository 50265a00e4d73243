package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookstore/config"

	"github.com/go-resty/resty/v2"
)

type openLibraryBook struct {
	Title  string  `json:"title"`
	Covers []int64 `json:"covers"`
}

// NormalizeISBN strips separators and validates the 10 or 13 digit forms
func NormalizeISBN(isbn string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(isbn))

	if len(cleaned) != 10 && len(cleaned) != 13 {
		return ""
	}
	for i, r := range cleaned {
		if r >= '0' && r <= '9' {
			continue
		}
		// ISBN-10 allows a trailing X check digit
		if len(cleaned) == 10 && i == 9 && (r == 'X' || r == 'x') {
			continue
		}
		return ""
	}
	return cleaned
}

// LookupCoverURL fetches a cover image URL for an ISBN from Open Library
func LookupCoverURL(isbn string) (string, error) {
	normalized := NormalizeISBN(isbn)
	if normalized == "" {
		return "", fmt.Errorf("invalid ISBN: %s", isbn)
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		Get(fmt.Sprintf("%s/isbn/%s.json", config.AppConfig.OpenLibraryURL, normalized))
	if err != nil {
		return "", fmt.Errorf("fetch ISBN data: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode())
	}

	var book openLibraryBook
	if err := json.Unmarshal(resp.Body(), &book); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(book.Covers) == 0 {
		return "", fmt.Errorf("no cover for ISBN %s", normalized)
	}

	return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", book.Covers[0]), nil
}
