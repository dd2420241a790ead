package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
)

func TestTokenService(t *testing.T) {
	identity := Identity{Email: "a@acme.com", Kind: KindCompany, UserID: 7}

	t.Run(`issued token verifies back to the same identity`, func(t *testing.T) {
		tokens := NewTokenService("test-secret", time.Hour, true)

		signed, err := tokens.Issue(identity)
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		got, err := tokens.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, identity, *got)
	})

	t.Run(`garbage token is rejected`, func(t *testing.T) {
		tokens := NewTokenService("test-secret", time.Hour, true)

		_, err := tokens.Verify("not-a-jwt")
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run(`token signed with another secret is rejected`, func(t *testing.T) {
		tokens := NewTokenService("test-secret", time.Hour, true)
		other := NewTokenService("other-secret", time.Hour, true)

		signed, err := other.Issue(identity)
		require.NoError(t, err)

		_, err = tokens.Verify(signed)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run(`expired token is rejected when expiry is enforced`, func(t *testing.T) {
		tokens := NewTokenService("test-secret", -time.Minute, true)

		signed, err := tokens.Issue(identity)
		require.NoError(t, err)

		_, err = tokens.Verify(signed)
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run(`expired token is accepted when enforcement is off`, func(t *testing.T) {
		tokens := NewTokenService("test-secret", -time.Minute, false)

		signed, err := tokens.Issue(identity)
		require.NoError(t, err)

		got, err := tokens.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, identity.Email, got.Email)
	})
}
