package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		username string
		password string
		reason   string
	}{
		{"valid", "Jane Doe", "jane@example.com", "jdoe", "secret1", ""},
		{"blank name", "  ", "jane@example.com", "jdoe", "secret1", "All fields are required"},
		{"missing email", "Jane Doe", "", "jdoe", "secret1", "All fields are required"},
		{"missing password", "Jane Doe", "jane@example.com", "jdoe", "", "All fields are required"},
		{"short password", "Jane Doe", "jane@example.com", "jdoe", "12345", "must be at least 6 characters"},
		{"six characters is enough", "Jane Doe", "jane@example.com", "jdoe", "123456", ""},
		{"multibyte characters count once", "Jane Doe", "jane@example.com", "jdoe", "äöü", "must be at least 6 characters"},
		{"six multibyte characters", "Jane Doe", "jane@example.com", "jdoe", "äöüäöü", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.fullName, tt.email, tt.username, tt.password)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
			var ve *errs.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := coremocks.NewMockTimeProvider(t)

	t.Run("Trims identity fields", func(t *testing.T) {
		clock.EXPECT().Now().Return(now).Once()

		user, err := NewUser(" Jane Doe ", " jane@example.com", "jdoe ", "hash", clock)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.FullName)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "jdoe", user.Username)
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("Requires a hash", func(t *testing.T) {
		_, err := NewUser("Jane Doe", "jane@example.com", "jdoe", "", clock)

		assert.True(t, errs.IsValidationError(err))
	})
}

func TestClaimsFor(t *testing.T) {
	issued := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	user := &User{ID: 5, Username: "jdoe", FullName: "Jane Doe"}

	claims := ClaimsFor(user, issued, 24*time.Hour)

	assert.Equal(t, uint64(5), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "Jane Doe", claims.FullName)
	assert.Equal(t, issued.Add(24*time.Hour), claims.ExpiresAt)
}
