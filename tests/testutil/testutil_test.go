package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustSetTestEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	MustSetTestEnvironment(t)

	assert.Equal(t, "test", os.Getenv("GO_ENV"))
}

func TestNewTestAppSeedsAdmin(t *testing.T) {
	app := NewTestApp(t)

	session, err := app.Auth.Login(t.Context(), AdminUsername, AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, AdminUsername, session.Username)
	assert.NotEmpty(t, app.AdminToken(t))
}
