package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress_IPv4(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"google dns", "8.8.8.8", true},
		{"all zeros", "0.0.0.0", true},
		{"broadcast", "255.255.255.255", true},
		{"upper boundary 249", "249.200.199.100", true},
		{"zero padded octet", "01.1.1.1", true},
		{"triple zero octet", "000.1.1.1", true},
		{"octet 256", "256.1.1.1", false},
		{"octet 999", "999.1.1.1", false},
		{"four digit octet", "0255.1.1.1", false},
		{"three octets", "192.168.1", false},
		{"five octets", "192.168.1.1.1", false},
		{"empty octet", "192.168..1", false},
		{"trailing dot", "1.1.1.1.", false},
		{"letters", "abc.def.ghi.jkl", false},
		{"negative", "192.-168.1.1", false},
		{"cidr suffix", "10.0.0.1/32", false},
		{"leading space", " 8.8.8.8", false},
		{"trailing space", "8.8.8.8 ", false},
		{"trailing newline", "8.8.8.8\n", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.ip), "IsValidAddress(%q)", tt.ip)
		})
	}
}

func TestIsValidAddress_IPv6(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"full form", "2001:0db8:85a3:0000:0000:8a2e:0370:7334", true},
		{"short groups", "2001:db8:0:0:0:0:2:1", true},
		{"single digit groups", "0:0:0:0:0:0:0:1", true},
		{"mixed case", "FE80:0:0:0:0202:B3FF:fe1e:8329", true},
		{"compressed", "2001:db8::1", false},
		{"loopback compressed", "::1", false},
		{"seven groups", "2001:db8:0:0:0:0:1", false},
		{"nine groups", "2001:db8:0:0:0:0:0:1:2", false},
		{"five digit group", "2001:0db8:85a3:00000:0000:8a2e:0370:7334", false},
		{"non hex", "2001:db8:0:0:0:0:0:g", false},
		{"ipv4 mapped", "0:0:0:0:0:ffff:192.168.1.1", false},
		{"zone id", "fe80:0:0:0:0:0:0:1%eth0", false},
		{"empty group", "2001:db8:0:0::0:0:1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.ip), "IsValidAddress(%q)", tt.ip)
		})
	}
}

func TestIsValidAddress_EveryOctetValue(t *testing.T) {
	for n := 0; n <= 300; n++ {
		ip := fmt.Sprintf("10.%d.0.1", n)
		assert.Equal(t, n <= 255, IsValidAddress(ip), ip)
	}
}

func TestAddressFamily(t *testing.T) {
	assert.Equal(t, FamilyIPv4, AddressFamily("1.1.1.1"))
	assert.Equal(t, FamilyIPv6, AddressFamily("1:2:3:4:5:6:7:8"))
	assert.Equal(t, "", AddressFamily("not-an-ip"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Mountai...", TruncateString("Mountain View", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
