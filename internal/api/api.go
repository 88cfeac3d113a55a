// Package api maps storefront domain operations onto the backend REST endpoints.
// There is one service per resource (games, purchases, comments, users, auth). Each
// service wraps the shared requester.Client and normalizes the response envelopes
// the backend may use, so callers always receive plain values and slices.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"game_store/internal/models"
)

var (
	// ErrPageLimit is returned when the game listing reports more pages than the configured cap.
	ErrPageLimit = errors.New("api: page limit exceeded")
	// ErrNoGame is returned when a purchase response carries no game record.
	ErrNoGame = errors.New("api: response contains no game")
)

// isArray reports whether raw holds a JSON array.
func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// listEnvelope decodes raw as a bare array or as an object wrapping the array under
// one of keys. Any other shape yields an empty list.
func listEnvelope(raw json.RawMessage, keys ...string) []json.RawMessage {
	items := make([]json.RawMessage, 0)
	if isArray(raw) {
		if err := json.Unmarshal(raw, &items); err != nil {
			return make([]json.RawMessage, 0)
		}
		return items
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return items
	}
	for _, key := range keys {
		if inner, ok := envelope[key]; ok && isArray(inner) {
			if err := json.Unmarshal(inner, &items); err != nil {
				return make([]json.RawMessage, 0)
			}
			return items
		}
	}
	return items
}

// unwrapGame decodes a purchase record that is either a bare game or a wrapper
// carrying the game under "game".
func unwrapGame(raw json.RawMessage) (*models.Game, error) {
	var envelope struct {
		Game *models.Game `json:"game"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Game != nil {
		return envelope.Game, nil
	}

	var game models.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return nil, err
	}
	if game.ID == 0 {
		return nil, ErrNoGame
	}
	return &game, nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
