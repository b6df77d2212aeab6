// Package lichess defines the typed wire model for the lichess bot API:
// the events delivered on the bot and per-game NDJSON streams, challenges,
// games, users and preferences. Decoding is strict where the wire is
// polymorphic (tagged unions, the status id/name object, the variant
// object) and lenient where the wire is deliberately sparse.
package lichess

// Color identifies a seat in a game.
type Color string

// Seat colors.
const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
)

// Speed classifies a game's time control band.
type Speed string

// Speed values as sent by the wire.
const (
	SpeedUltraBullet    Speed = "ultraBullet"
	SpeedBullet         Speed = "bullet"
	SpeedBlitz          Speed = "blitz"
	SpeedRapid          Speed = "rapid"
	SpeedClassical      Speed = "classical"
	SpeedCorrespondence Speed = "correspondence"
)

// Clock holds a real-time clock configuration. Both fields may be absent
// in sparse payloads.
type Clock struct {
	// Limit is the initial time budget in seconds.
	Limit *int `json:"limit"`

	// Increment is the per-move increment in seconds.
	Increment *int `json:"increment"`
}

// TimeControlKind discriminates the timeControl union.
type TimeControlKind string

// Time control kinds.
const (
	TimeControlClock          TimeControlKind = "clock"
	TimeControlCorrespondence TimeControlKind = "correspondence"
	TimeControlUnlimited      TimeControlKind = "unlimited"
)

// TimeControl is the tagged time-control union. Limit and Increment are
// set for clock controls, DaysPerTurn for correspondence, neither for
// unlimited.
type TimeControl struct {
	Type        TimeControlKind `json:"type"`
	Limit       *int            `json:"limit,omitempty"`
	Increment   *int            `json:"increment,omitempty"`
	DaysPerTurn *int            `json:"daysPerTurn,omitempty"`
}

// Compat reports which client APIs a game is compatible with.
type Compat struct {
	Bot   *bool `json:"bot"`
	Board *bool `json:"board"`
}

// GameEventSource tells how a game came to be.
type GameEventSource string

// Game sources.
const (
	SourceLobby      GameEventSource = "lobby"
	SourceFriend     GameEventSource = "friend"
	SourceAI         GameEventSource = "ai"
	SourceAPI        GameEventSource = "api"
	SourceTournament GameEventSource = "tournament"
	SourcePosition   GameEventSource = "position"
	SourceImport     GameEventSource = "import"
	SourceImportLive GameEventSource = "importlive"
	SourceSimul      GameEventSource = "simul"
	SourceRelay      GameEventSource = "relay"
	SourcePool       GameEventSource = "pool"
	SourceSwiss      GameEventSource = "swiss"
)
