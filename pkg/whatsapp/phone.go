package whatsapp

import "strings"

// CountryCode is the Indonesian international dialing prefix.
const CountryCode = "62"

// NormalizePhone converts a free-form Indonesian phone number into a
// wa.me-compatible digit string prefixed with the country code.
//
// No length or checksum validation is performed; malformed numbers pass
// through structurally transformed.
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	switch {
	case strings.HasPrefix(clean, "08"):
		// 08xxxxxxxxxx -> 628xxxxxxxxxx
		return CountryCode + clean[1:]
	case strings.HasPrefix(clean, "8"):
		// 8xxxxxxxxxx -> 628xxxxxxxxxx
		return CountryCode + clean
	case strings.HasPrefix(clean, CountryCode):
		// already in international format
		return clean
	case strings.HasPrefix(clean, "0"):
		// 0xxxxxxxxxx -> 62xxxxxxxxxx
		return CountryCode + clean[1:]
	}

	// no recognized prefix, assume it needs the country code
	return CountryCode + clean
}
