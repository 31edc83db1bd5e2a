// Package geo resolves a connection's origin address to a country flag.
// Lookup failures fall back to a globe so login never blocks on geodata.
package geo

import (
	"net"
	"strings"

	"github.com/phuslu/iploc"
)

const FallbackFlag = "🌍"

// Flag returns the flag emoji for the country the address belongs to.
func Flag(addr string) string {
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return FallbackFlag
	}
	return FlagForCountry(iploc.Country(ip))
}

// FlagForCountry converts a two-letter ISO country code to its flag emoji.
// Unknown or private-range codes ("", "ZZ") map to the fallback globe.
func FlagForCountry(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 || code == "ZZ" {
		return FallbackFlag
	}
	var b strings.Builder
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return FallbackFlag
		}
		b.WriteRune(0x1F1E6 + c - 'A')
	}
	return b.String()
}
