package lichess

import (
	"encoding/json"
	"errors"
)

// GamePerf is the rating category of a game.
type GamePerf struct {
	// Name is the translated perf name (e.g. "Classical" or "Blitz").
	Name *string `json:"name"`
}

// GamePlayer describes one seat of a game. Every field is optional: the
// seat may be held by an AI, an anonymous player, or a sparse payload.
type GamePlayer struct {
	AILevel     *int    `json:"aiLevel"`
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Title       *Title  `json:"title"`
	Rating      *int    `json:"rating"`
	Provisional *bool   `json:"provisional"`
}

// GameInfo is the immutable metadata of a game, valid for its whole
// lifetime.
type GameInfo struct {
	ID           string     `json:"id"`
	Variant      *Variant   `json:"-"`
	Clock        *Clock     `json:"clock"`
	Speed        Speed      `json:"speed"`
	Perf         GamePerf   `json:"perf"`
	Rated        bool       `json:"rated"`
	CreatedAt    int64      `json:"createdAt"`
	White        GamePlayer `json:"white"`
	Black        GamePlayer `json:"black"`
	InitialFEN   string     `json:"initialFen"`
	TournamentID *string    `json:"tournamentId"`
}

// UnmarshalJSON decodes game metadata, applying the variant object's
// empty-object fallback.
func (g *GameInfo) UnmarshalJSON(data []byte) error {
	type alias GameInfo
	aux := struct {
		*alias
		Variant json.RawMessage `json:"variant"`
	}{alias: (*alias)(g)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	variant, err := parseOptionalVariant(aux.Variant)
	if err != nil {
		return err
	}
	g.Variant = variant
	return nil
}

// GameState is the mutable per-turn snapshot of a game. The draw-offer and
// take-back flags default to false when the wire omits them.
type GameState struct {
	// Moves is the move list so far in UCI notation, space-separated.
	Moves string `json:"moves"`

	// WhiteTime and BlackTime are the remaining clock times in milliseconds.
	WhiteTime int64 `json:"wtime"`
	BlackTime int64 `json:"btime"`

	// WhiteIncrement and BlackIncrement are the Fischer increments in
	// milliseconds.
	WhiteIncrement int64 `json:"winc"`
	BlackIncrement int64 `json:"binc"`

	Status GameStatus `json:"-"`

	// Winner is the color of the winner, if any.
	Winner *Color `json:"winner"`

	WhiteDrawOffer bool `json:"wdraw"`
	BlackDrawOffer bool `json:"bdraw"`
	WhiteTakeBack  bool `json:"wtakeback"`
	BlackTakeBack  bool `json:"btakeback"`
}

// UnmarshalJSON decodes a state snapshot. Unlike the sparse start/finish
// payloads, a snapshot without a status is malformed.
func (s *GameState) UnmarshalJSON(data []byte) error {
	type alias GameState
	aux := struct {
		*alias
		Status json.RawMessage `json:"status"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Status) == 0 {
		return errors.New("game state without a status")
	}
	return json.Unmarshal(aux.Status, &s.Status)
}

// GameFull is the first record of every per-game stream: the immutable
// game metadata flattened together with the initial state snapshot.
type GameFull struct {
	GameInfo
	State GameState `json:"state"`
}

// UnmarshalJSON decodes the flattened metadata and the nested state from
// the same record. A plain embedded decode would promote GameInfo's
// unmarshaler and drop the state field.
func (g *GameFull) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &g.GameInfo); err != nil {
		return err
	}
	var aux struct {
		State GameState `json:"state"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	g.State = aux.State
	return nil
}

// GameStartFinish is the payload of a game start or finish event. The wire
// may send it almost empty, so everything is optional. Status arrives in
// the {id, name} object form.
type GameStartFinish struct {
	ID     *string          `json:"id"`
	Source *GameEventSource `json:"source"`
	Status *GameStatus      `json:"-"`
	Winner *Color           `json:"winner"`
	Compat *Compat          `json:"compat"`
}

// UnmarshalJSON decodes a game start/finish payload, resolving the status
// object through the id/name tables.
func (g *GameStartFinish) UnmarshalJSON(data []byte) error {
	type alias GameStartFinish
	aux := struct {
		*alias
		Status json.RawMessage `json:"status"`
	}{alias: (*alias)(g)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	status, err := parseStatusObject(aux.Status)
	if err != nil {
		return err
	}
	g.Status = status
	return nil
}

// OpponentGone reports whether the opponent has left the game, and how
// long before a win or draw can be claimed.
type OpponentGone struct {
	Gone              bool `json:"gone"`
	ClaimWinInSeconds *int `json:"claimWinInSeconds"`
}
