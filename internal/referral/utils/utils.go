package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const linkCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ErrInvalidDestination is returned when a product URL cannot be turned into a redirect target
var ErrInvalidDestination = errors.New("invalid destination url")

// GenerateLinkCode generates a random lowercase base36 short code
func GenerateLinkCode(length int) (string, error) {
	if length <= 0 {
		length = 8
	}

	bytes := make([]byte, length)
	code := make([]byte, 0, length)
	for len(code) < length {
		if _, err := rand.Read(bytes); err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		for _, b := range bytes {
			// 252 is the largest multiple of 36 that fits in a byte
			if b >= 252 {
				continue
			}
			code = append(code, linkCodeAlphabet[int(b)%len(linkCodeAlphabet)])
			if len(code) == length {
				break
			}
		}
	}

	return string(code), nil
}

// BuildShareLink constructs the public referral URL for a short code
func BuildShareLink(baseURL, code string) string {
	return fmt.Sprintf("%s/ref/%s", strings.TrimRight(baseURL, "/"), code)
}

// BuildDestinationURL appends the tracking parameter to a product URL.
// URLs without a scheme are treated as https. Existing query parameters are kept.
func BuildDestinationURL(productURL, trackingParam, trackingValue string) (string, error) {
	raw := strings.TrimSpace(productURL)
	if raw == "" {
		return "", ErrInvalidDestination
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDestination, productURL)
	}

	query := u.Query()
	query.Set(trackingParam, trackingValue)
	u.RawQuery = query.Encode()

	return u.String(), nil
}
