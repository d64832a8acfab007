package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Dreadlight_Go/internal/character"
	"github.com/osse101/Dreadlight_Go/internal/domain"
	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/worker"
	"github.com/osse101/Dreadlight_Go/internal/world"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUnavailableError    = "Game loop is not running. Please try again later."
	ErrMsgRequestTimeoutError = "The game did not answer in time"

	ErrMsgItemNotFoundError    = "No such item"
	ErrMsgNotInInventoryError  = "You don't have that item"
	ErrMsgInsufficientItemsErr = "Not enough items"
	ErrMsgInventoryFullError   = "Inventory is full"
	ErrMsgInvalidSlotError     = "That slot does not exist"
	ErrMsgSlotEmptyError       = "That slot is empty"
	ErrMsgNothingEquippedError = "Nothing is equipped"
	ErrMsgAttachFailedError    = "Your hands are busy"
	ErrMsgOnCooldownError      = "Item is on cooldown. Try again later"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgPickupNotFoundError  = "Nothing to pick up there"
	ErrMsgBatteryFullError     = "The flashlight battery is already full"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, world.ErrPickupNotFound):
		return http.StatusNotFound, ErrMsgPickupNotFoundError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrItemNotHeld):
		return http.StatusConflict, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusConflict, ErrMsgSlotEmptyError
	case errors.Is(err, domain.ErrNothingEquipped):
		return http.StatusConflict, ErrMsgNothingEquippedError
	case errors.Is(err, domain.ErrAttachFailed):
		return http.StatusConflict, ErrMsgAttachFailedError
	case errors.Is(err, character.ErrBatteryFull):
		return http.StatusConflict, ErrMsgBatteryFullError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, worker.ErrPoolStopped):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgRequestTimeoutError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
