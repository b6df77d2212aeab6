package lichess

// ChatRoom selects which chat channel a message belongs to.
type ChatRoom string

const (
	// RoomPlayer is the chat visible to both players and spectators.
	RoomPlayer ChatRoom = "player"
	// RoomSpectator is the chat visible to spectators only.
	RoomSpectator ChatRoom = "spectator"
)

// ChatLine is one message of a game chat.
type ChatLine struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// ChatLineEvent is a chat message as delivered on a game stream, carrying
// the room it was posted to.
type ChatLineEvent struct {
	ChatLine
	Room ChatRoom `json:"room"`
}
