package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValidationError(t *testing.T) {
	type moveRequest struct {
		From int    `validate:"min=0"`
		To   int    `validate:"min=0,nefield=From"`
		Item string `validate:"required,itemname"`
	}

	err := GetValidator().ValidateStruct(moveRequest{From: 2, To: 2, Item: "bad\tname"})
	fields := FormatValidationError(err)

	assert.Equal(t, "Must differ from from", fields["to"])
	assert.Equal(t, "Invalid item name", fields["item"])
	assert.NotContains(t, fields, "from")

	fields = FormatValidationError(GetValidator().ValidateStruct(moveRequest{From: -1, To: 0}))
	assert.Equal(t, "Must be at least 0", fields["from"])
	assert.Equal(t, "This field is required", fields["item"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestMapServiceErrorToUserMessage_Nil(t *testing.T) {
	status, msg := mapServiceErrorToUserMessage(nil)
	assert.Equal(t, 500, status)
	assert.Equal(t, ErrMsgUnknownError, msg)
}
