package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorgram/enquiry_bot/internal/model"
)

func TestSessionUserRoundTrip(t *testing.T) {
	user := &model.User{
		ID:           42,
		Username:     "nikhh",
		Email:        "nikhil@example.com",
		MobileNumber: "9876543210",
		Role:         "student",
		HomeAddress: &model.Address{
			ID:      7,
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			PinCode: "560001",
			Country: "India",
		},
	}

	data, err := encodeUser(user)
	require.NoError(t, err)

	decoded, err := decodeUser(data)
	require.NoError(t, err)
	assert.Equal(t, user, decoded)
}

func TestSessionUserRoundTrip_NilUser(t *testing.T) {
	data, err := encodeUser(nil)
	require.NoError(t, err)

	decoded, err := decodeUser(data)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeUser_EmptyColumn(t *testing.T) {
	decoded, err := decodeUser(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeUser_Corrupt(t *testing.T) {
	_, err := decodeUser([]byte("{not json"))
	assert.Error(t, err)
}
