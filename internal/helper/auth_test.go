package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "admin@itbyadika.ac.id")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin@itbyadika.ac.id", claims.Email)
}

func TestVerifyTokenAcceptsBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken(7, "admin@itbyadika.ac.id")
	require.NoError(t, err)

	_, err = auth.VerifyToken("Bearer " + token)
	assert.NoError(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := SetupAuth("secret-a").GenerateToken(7, "admin@itbyadika.ac.id")
	require.NoError(t, err)

	_, err = SetupAuth("secret-b").VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsEmpty(t *testing.T) {
	auth := SetupAuth("test-secret")
	_, err := auth.VerifyToken("")
	assert.Error(t, err)
}

func TestGenerateTokenRequiresInputs(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.GenerateToken(0, "admin@itbyadika.ac.id")
	assert.Error(t, err)

	_, err = auth.GenerateToken(7, "")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	auth := SetupAuth("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword("rahasia123", string(hash)))
	assert.Error(t, auth.VerifyPassword("salah", string(hash)))
}
