package utils

import (
	"regexp"
)

var (
	// Octets accept up to three digits, so zero-padded forms like "01" or "001" pass.
	ipv4Pattern = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

	// Full eight-group form only. "::" compression, embedded IPv4 and zone IDs are rejected.
	ipv6Pattern = regexp.MustCompile(`^([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}$`)
)

const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// IsValidAddress reports whether candidate is a dotted-decimal IPv4 address or
// an uncompressed eight-group IPv6 address. The candidate is not trimmed.
func IsValidAddress(candidate string) bool {
	return AddressFamily(candidate) != ""
}

// AddressFamily returns FamilyIPv4 or FamilyIPv6 for a valid address and an
// empty string otherwise.
func AddressFamily(candidate string) string {
	switch {
	case ipv4Pattern.MatchString(candidate):
		return FamilyIPv4
	case ipv6Pattern.MatchString(candidate):
		return FamilyIPv6
	}
	return ""
}

// TruncateString shortens s to maxLength runes, ending with "..." when cut
func TruncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
