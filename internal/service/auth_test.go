package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
)

func TestRegisterIssuesUsableToken(t *testing.T) {
	e := newEnv(t)

	token, user, err := e.auth.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.Password, "plaintext must never be stored")

	identity, err := e.auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, model.RoleCustomer, identity.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	in := RegisterInput{Email: "alice@example.com", Password: "hunter22"}
	_, _, err := e.auth.Register(context.Background(), in)
	require.NoError(t, err)

	_, _, err = e.auth.Register(context.Background(), in)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)
}

func TestLoginErrors(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.auth.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	// wrong password on an existing account
	_, _, err = e.auth.Login(context.Background(), "alice@example.com", "wrong")
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)

	// unknown email
	_, _, err = e.auth.Login(context.Background(), "nobody@example.com", "hunter22")
	status, ok = StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLoginReturnsToken(t *testing.T) {
	e := newEnv(t)
	_, registered, err := e.auth.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, user, err := e.auth.Login(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	identity, err := e.auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, identity.ID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.ParseToken("not-a-token")
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	e := newEnv(t)
	other := NewAuthService(memUsers(t), []byte("other-secret"))

	token, _, err := other.Register(context.Background(), RegisterInput{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = e.auth.ParseToken(token)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, status)
}
