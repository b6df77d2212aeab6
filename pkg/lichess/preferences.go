package lichess

import "encoding/json"

// UserPreferences is the account's display and play preferences. The wire
// nests everything but the language under a "prefs" object; decoding
// flattens that away. Missing booleans default to false.
type UserPreferences struct {
	Dark            bool
	Transparent     bool
	BackgroundImage string
	Is3D            bool
	Theme           string
	PieceSet        string
	Theme3D         string
	PieceSet3D      string
	SoundSet        string
	Blindfold       int
	AutoQueen       int
	AutoThreefold   int
	TakeBack        int
	MoreTime        int
	ClockTenths     int
	ClockBar        bool
	ClockSound      bool
	Premove         bool
	Animation       int
	Captured        bool
	Follow          bool
	Highlight       bool
	Destination     bool
	Coords          int
	Replay          int
	Challenge       int
	Message         int
	CoordColor      int
	SubmitMove      int
	ConfirmResign   int
	InsightShare    int
	KeyboardMove    int
	Zen             int
	MoveEvent       int
	RookCastle      int
	Language        string
}

// prefsPayload mirrors the wire's nested "prefs" object, including its
// abbreviated field names.
type prefsPayload struct {
	Dark            bool   `json:"dark"`
	Transparent     bool   `json:"transp"`
	BackgroundImage string `json:"bgImg"`
	Is3D            bool   `json:"is3d"`
	Theme           string `json:"theme"`
	PieceSet        string `json:"pieceSet"`
	Theme3D         string `json:"theme3d"`
	PieceSet3D      string `json:"pieceSet3d"`
	SoundSet        string `json:"soundSet"`
	Blindfold       int    `json:"blindfold"`
	AutoQueen       int    `json:"autoQueen"`
	AutoThreefold   int    `json:"autoThreefold"`
	TakeBack        int    `json:"takeback"`
	MoreTime        int    `json:"moretime"`
	ClockTenths     int    `json:"clockTenths"`
	ClockBar        bool   `json:"clockBar"`
	ClockSound      bool   `json:"clockSound"`
	Premove         bool   `json:"premove"`
	Animation       int    `json:"animation"`
	Captured        bool   `json:"captured"`
	Follow          bool   `json:"follow"`
	Highlight       bool   `json:"highlight"`
	Destination     bool   `json:"destination"`
	Coords          int    `json:"coords"`
	Replay          int    `json:"replay"`
	Challenge       int    `json:"challenge"`
	Message         int    `json:"message"`
	CoordColor      int    `json:"coordColor"`
	SubmitMove      int    `json:"submitMove"`
	ConfirmResign   int    `json:"confirmResign"`
	InsightShare    int    `json:"insightShare"`
	KeyboardMove    int    `json:"keyboardMove"`
	Zen             int    `json:"zen"`
	MoveEvent       int    `json:"moveEvent"`
	RookCastle      int    `json:"rookCastle"`
}

// UnmarshalJSON flattens the wire's {prefs: {...}, language} nesting.
func (p *UserPreferences) UnmarshalJSON(data []byte) error {
	var nested struct {
		Prefs    prefsPayload `json:"prefs"`
		Language string       `json:"language"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}

	*p = UserPreferences{
		Dark:            nested.Prefs.Dark,
		Transparent:     nested.Prefs.Transparent,
		BackgroundImage: nested.Prefs.BackgroundImage,
		Is3D:            nested.Prefs.Is3D,
		Theme:           nested.Prefs.Theme,
		PieceSet:        nested.Prefs.PieceSet,
		Theme3D:         nested.Prefs.Theme3D,
		PieceSet3D:      nested.Prefs.PieceSet3D,
		SoundSet:        nested.Prefs.SoundSet,
		Blindfold:       nested.Prefs.Blindfold,
		AutoQueen:       nested.Prefs.AutoQueen,
		AutoThreefold:   nested.Prefs.AutoThreefold,
		TakeBack:        nested.Prefs.TakeBack,
		MoreTime:        nested.Prefs.MoreTime,
		ClockTenths:     nested.Prefs.ClockTenths,
		ClockBar:        nested.Prefs.ClockBar,
		ClockSound:      nested.Prefs.ClockSound,
		Premove:         nested.Prefs.Premove,
		Animation:       nested.Prefs.Animation,
		Captured:        nested.Prefs.Captured,
		Follow:          nested.Prefs.Follow,
		Highlight:       nested.Prefs.Highlight,
		Destination:     nested.Prefs.Destination,
		Coords:          nested.Prefs.Coords,
		Replay:          nested.Prefs.Replay,
		Challenge:       nested.Prefs.Challenge,
		Message:         nested.Prefs.Message,
		CoordColor:      nested.Prefs.CoordColor,
		SubmitMove:      nested.Prefs.SubmitMove,
		ConfirmResign:   nested.Prefs.ConfirmResign,
		InsightShare:    nested.Prefs.InsightShare,
		KeyboardMove:    nested.Prefs.KeyboardMove,
		Zen:             nested.Prefs.Zen,
		MoveEvent:       nested.Prefs.MoveEvent,
		RookCastle:      nested.Prefs.RookCastle,
		Language:        nested.Language,
	}
	return nil
}
