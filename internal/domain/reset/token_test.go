package reset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aactechsol/massage-manager/internal/httperr"
)

func TestNewToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	pr := New(42, now)

	assert.Equal(t, uint(42), pr.UserID)
	assert.NotEmpty(t, pr.Token)
	assert.False(t, pr.Used)
	assert.Equal(t, now.Add(24*time.Hour), pr.ExpiresAt)
}

func TestTokensAreUnique(t *testing.T) {
	now := time.Now()
	a := New(1, now)
	b := New(1, now)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestConsumeOnlyOnce(t *testing.T) {
	now := time.Now()
	pr := New(1, now)

	require.NoError(t, Consume(&pr, now))
	assert.True(t, pr.Used)

	err := Consume(&pr, now)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_or_expired_token"))
}

func TestConsumeFailsIdentically(t *testing.T) {
	now := time.Now()

	expired := New(1, now.Add(-25*time.Hour))
	used := New(1, now)
	used.Used = true

	for name, consume := range map[string]error{
		"missing": Consume(nil, now),
		"expired": Consume(&expired, now),
		"used":    Consume(&used, now),
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, consume)
			assert.True(t, httperr.IsBusiness(consume, "invalid_or_expired_token"),
				"every invalid token must fail with the same code")
		})
	}
}

func TestConsumeJustBeforeExpiry(t *testing.T) {
	now := time.Now()
	pr := New(1, now)

	assert.NoError(t, CanConsume(&pr, now.Add(24*time.Hour)))
	assert.Error(t, CanConsume(&pr, now.Add(24*time.Hour+time.Second)))
}
