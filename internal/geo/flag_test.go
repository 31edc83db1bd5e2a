package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagForCountry(t *testing.T) {
	assert.Equal(t, "🇺🇸", FlagForCountry("US"))
	assert.Equal(t, "🇩🇪", FlagForCountry("de"))
	assert.Equal(t, FallbackFlag, FlagForCountry(""))
	assert.Equal(t, FallbackFlag, FlagForCountry("ZZ"))
	assert.Equal(t, FallbackFlag, FlagForCountry("USA"))
	assert.Equal(t, FallbackFlag, FlagForCountry("1A"))
}

func TestFlagFallsBackOnBadAddress(t *testing.T) {
	assert.Equal(t, FallbackFlag, Flag("not-an-ip"))
	assert.Equal(t, FallbackFlag, Flag(""))
}

func TestFlagAcceptsHostPort(t *testing.T) {
	// Private ranges have no country; must still resolve to the fallback
	// rather than erroring on the port suffix.
	assert.Equal(t, FallbackFlag, Flag("192.168.1.10:52114"))
	assert.Equal(t, FallbackFlag, Flag("127.0.0.1"))
}
