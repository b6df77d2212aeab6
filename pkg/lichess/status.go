package lichess

import (
	"encoding/json"
	"fmt"
)

// GameStatus is the closed set of game states. The wire sends it either as a
// bare camelCase string (game state snapshots) or as an object carrying a
// numeric id and/or a name (game start/finish events).
type GameStatus string

// Game statuses. Note that "outoftime" is all-lowercase on the wire while
// the other multi-word statuses are camelCase.
const (
	StatusCreated       GameStatus = "created"
	StatusStarted       GameStatus = "started"
	StatusAborted       GameStatus = "aborted"
	StatusMate          GameStatus = "mate"
	StatusResign        GameStatus = "resign"
	StatusStalemate     GameStatus = "stalemate"
	StatusTimeout       GameStatus = "timeout"
	StatusDraw          GameStatus = "draw"
	StatusOutOfTime     GameStatus = "outoftime"
	StatusCheat         GameStatus = "cheat"
	StatusNoStart       GameStatus = "noStart"
	StatusUnknownFinish GameStatus = "unknownFinish"
	StatusVariantEnd    GameStatus = "variantEnd"
)

// IsRunning reports whether a game with this status is still in progress,
// i.e. no decision has been reached and moves can still be played.
func (s GameStatus) IsRunning() bool {
	return s == StatusCreated || s == StatusStarted
}

var statusByID = map[int64]GameStatus{
	10: StatusCreated,
	20: StatusStarted,
	25: StatusAborted,
	30: StatusMate,
	31: StatusResign,
	32: StatusStalemate,
	33: StatusTimeout,
	34: StatusDraw,
	35: StatusOutOfTime,
	36: StatusCheat,
	37: StatusNoStart,
	38: StatusUnknownFinish,
	60: StatusVariantEnd,
}

var statusByName = map[string]GameStatus{
	"created":       StatusCreated,
	"started":       StatusStarted,
	"aborted":       StatusAborted,
	"mate":          StatusMate,
	"resign":        StatusResign,
	"stalemate":     StatusStalemate,
	"timeout":       StatusTimeout,
	"draw":          StatusDraw,
	"outoftime":     StatusOutOfTime,
	"cheat":         StatusCheat,
	"noStart":       StatusNoStart,
	"unknownFinish": StatusUnknownFinish,
	"variantEnd":    StatusVariantEnd,
}

// StatusError reports a game status payload that could not be resolved:
// an unknown id, an unknown name, or an id and name that map to two
// different statuses.
type StatusError struct {
	ID   *int64
	Name *string
}

func (e *StatusError) Error() string {
	switch {
	case e.ID != nil && e.Name != nil:
		return fmt.Sprintf("game status id %d does not match name %q", *e.ID, *e.Name)
	case e.ID != nil:
		return fmt.Sprintf("unknown game status id %d", *e.ID)
	default:
		return fmt.Sprintf("unknown game status name %q", *e.Name)
	}
}

// UnmarshalJSON decodes the bare string form of a status, rejecting names
// outside the closed set.
func (s *GameStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	status, ok := statusByName[name]
	if !ok {
		return &StatusError{Name: &name}
	}
	*s = status
	return nil
}

// statusObject is the {id, name} wire form used by game start/finish
// events. Either or both fields may be absent.
type statusObject struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// parseStatusObject resolves the object form of a status. The id and name
// are looked up in independent tables; if both are present they must agree.
// A missing or null object, or an object with neither field set, resolves
// to nil without error.
func parseStatusObject(raw json.RawMessage) (*GameStatus, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var obj statusObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}

	var fromID, fromName *GameStatus
	if obj.ID != nil {
		status, ok := statusByID[*obj.ID]
		if !ok {
			return nil, &StatusError{ID: obj.ID}
		}
		fromID = &status
	}
	if obj.Name != nil {
		status, ok := statusByName[*obj.Name]
		if !ok {
			return nil, &StatusError{Name: obj.Name}
		}
		fromName = &status
	}

	if fromID != nil && fromName != nil && *fromID != *fromName {
		return nil, &StatusError{ID: obj.ID, Name: obj.Name}
	}
	if fromID != nil {
		return fromID, nil
	}
	return fromName, nil
}
