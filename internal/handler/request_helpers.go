package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
//
//	var req AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// handleGameAction decodes REQ, runs action on the game loop and responds
// with whatever it returns. A nil result becomes a SuccessResponse.
func handleGameAction[REQ any](
	w http.ResponseWriter,
	r *http.Request,
	g *Game,
	opName string,
	action func(context.Context, REQ) (interface{}, error),
) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	runGameAction(w, r, g, opName, func(ctx context.Context) (interface{}, error) {
		return action(ctx, req)
	})
}

// runGameAction runs fn on the game loop and responds with its result
func runGameAction(w http.ResponseWriter, r *http.Request, g *Game, opName string, fn func(context.Context) (interface{}, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), g.timeout())
	defer cancel()

	// Buffered so a late run after a timeout never blocks the loop
	out := make(chan interface{}, 1)
	err := g.Loop.Do(ctx, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := fn(ctx)
		if err != nil {
			return err
		}
		out <- res
		return nil
	})
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	res := <-out
	if res == nil {
		res = SuccessResponse{Message: fmt.Sprintf(MsgActionSuccessFormat, opName)}
	}
	respondJSON(w, http.StatusOK, res)
}
