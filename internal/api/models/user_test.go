package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_GetFullName(t *testing.T) {
	user := User{Username: "a1b2c3", FirstName: "Giuseppi", LastName: "Macias"}
	assert.Equal(t, "Giuseppi Macias", user.GetFullName())

	user = User{Username: "a1b2c3", FirstName: "Giuseppi"}
	assert.Equal(t, "Giuseppi", user.GetFullName())

	user = User{Username: "a1b2c3"}
	assert.Equal(t, "a1b2c3", user.GetFullName(), "empty names fall back to the username")
}
