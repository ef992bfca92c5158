package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	const instituteDomain = "nitp.ac.in"

	t.Run("accepts institute address", func(t *testing.T) {
		assert.NoError(t, Validate("riya.ug23@nitp.ac.in", instituteDomain))
	})

	t.Run("is case insensitive", func(t *testing.T) {
		assert.NoError(t, Validate("Riya.UG23@NITP.AC.IN", instituteDomain))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.NoError(t, Validate("  riya.ug23@nitp.ac.in  ", instituteDomain))
	})

	t.Run("accepts domain config with leading at sign", func(t *testing.T) {
		assert.NoError(t, Validate("riya.ug23@nitp.ac.in", "@nitp.ac.in"))
	})

	t.Run("rejects outside addresses", func(t *testing.T) {
		err := Validate("riya@gmail.com", instituteDomain)
		assert.ErrorIs(t, err, ErrInvalidDomain)
	})

	t.Run("rejects lookalike subdomain suffix", func(t *testing.T) {
		// "evil-nitp.ac.in" must not pass as "nitp.ac.in"
		err := Validate("riya@evil-nitp.ac.in", instituteDomain)
		assert.ErrorIs(t, err, ErrInvalidDomain)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		assert.ErrorIs(t, Validate("", instituteDomain), ErrInvalidDomain)
	})
}

func TestLocalPart(t *testing.T) {
	assert.Equal(t, "riya.ug23", LocalPart("riya.ug23@nitp.ac.in"))
	assert.Equal(t, "no-at-sign", LocalPart("no-at-sign"))
	assert.Equal(t, "@nitp.ac.in", LocalPart("@nitp.ac.in"))
	assert.Equal(t, "a", LocalPart("a@b@c"))
}
