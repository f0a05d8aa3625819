// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

// Package avatar derives deterministic avatar image URLs from display names.
//
// # Usage
//
// Registration and the demo identity set have no uploaded pictures; they get
// an initials-based placeholder from ui-avatars.com instead. The same name
// always yields the same URL, so the derivation is safe to repeat.
package avatar

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// baseURL is the initials-placeholder service endpoint.
	baseURL = "https://ui-avatars.com/api/"

	// background and foreground follow the dashboard accent palette.
	backgroundColor = "0EA5E9"
	foregroundColor = "fff"
)

// FromName converts a display name into a deterministic avatar URL.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and strips combining marks (Đặng → Dang).
// 2. Collapses runs of whitespace into single separators.
// 3. Encodes the result into the ui-avatars query string.
func FromName(name string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	ascii, _, err := transform.String(t, name)
	if err != nil {
		ascii = name
	}

	// 2. Collapse whitespace
	parts := strings.Fields(ascii)
	if len(parts) == 0 {
		parts = []string{"Member"}
	}

	// 3. Build the query string; spaces become '+' per the service contract.
	query := url.Values{}
	query.Set("name", strings.Join(parts, " "))
	query.Set("background", backgroundColor)
	query.Set("color", foregroundColor)

	return baseURL + "?" + query.Encode()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
