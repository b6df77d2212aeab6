package lichess

// Title is an official player title. BOT is included: bot accounts carry
// it like any other title.
type Title string

// Player titles.
const (
	TitleGM  Title = "GM"
	TitleWGM Title = "WGM"
	TitleIM  Title = "IM"
	TitleWIM Title = "WIM"
	TitleFM  Title = "FM"
	TitleWFM Title = "WFM"
	TitleNM  Title = "NM"
	TitleWNM Title = "WNM"
	TitleCM  Title = "CM"
	TitleWCM Title = "WCM"
	TitleLM  Title = "LM"
	TitleBOT Title = "BOT"
)

// User is a user as embedded in challenges. Only id and name are
// guaranteed by the wire.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       *Title `json:"title"`
	Rating      *int   `json:"rating"`
	Provisional *bool  `json:"provisional"`
	Online      *bool  `json:"online"`
	Patron      *bool  `json:"patron"`
}

// UserProfile is the authenticated account's own identity, as returned by
// the account endpoint.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
