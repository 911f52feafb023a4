package utils

import (
	"testing"

	"palahian/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationToken(t *testing.T) {
	a, err := GenerateVerificationToken()
	require.NoError(t, err)
	b, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestVerificationEmail(t *testing.T) {
	subject, body := VerificationEmail("https://palahian.com", "Juan", "abc123")

	assert.Contains(t, subject, "Verify your email")
	assert.Contains(t, body, "Juan")
	assert.Contains(t, body, "https://palahian.com/api/auth/verify-email?token=abc123")
}

func TestSMTPMailerRequiresHost(t *testing.T) {
	err := NewSMTPMailer(config.MailConfig{}).Send("a@b.com", "s", "m")
	assert.Error(t, err)
}
