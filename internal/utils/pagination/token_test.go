package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard values
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	entryID := "5f1c3f1e-8a51-4b8e-9c55-0a3f5d0f2b11"

	token := EncodeToken(createdAt, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
	assert.Equal(t, entryID, decodedID, "Entry ID should match after decode")

	// Test case 2: Current time values
	now := time.Now().UTC()
	nowToken := EncodeToken(now, "x")
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid date format
	invalidDateToken := base64.StdEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention date parsing issue")
}
