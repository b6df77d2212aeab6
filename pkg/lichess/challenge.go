package lichess

import "encoding/json"

// ChallengeStatus is the lifecycle state of a challenge.
type ChallengeStatus string

// Challenge statuses.
const (
	ChallengeCreated        ChallengeStatus = "created"
	ChallengeOffline        ChallengeStatus = "offline"
	ChallengeCanceled       ChallengeStatus = "canceled"
	ChallengeDeclinedStatus ChallengeStatus = "declined"
	ChallengeAccepted       ChallengeStatus = "accepted"
)

// ChallengeColor is the color preference expressed by a challenge.
type ChallengeColor string

// Challenge color preferences.
const (
	ChallengeColorWhite  ChallengeColor = "white"
	ChallengeColorBlack  ChallengeColor = "black"
	ChallengeColorRandom ChallengeColor = "random"
)

// ChallengeDirection tells whether a challenge was received or sent.
type ChallengeDirection string

// Challenge directions.
const (
	DirectionIn  ChallengeDirection = "in"
	DirectionOut ChallengeDirection = "out"
)

// ChallengePerf describes the rating category a challenge counts towards.
type ChallengePerf struct {
	Icon *string `json:"icon"`
	Name *string `json:"name"`
}

// DeclineReason is the typed explanation a bot gives when rejecting a
// challenge. It is displayed to the challenger so they can potentially
// formulate a more conforming challenge.
type DeclineReason string

// Decline reasons.
const (
	// DeclineGeneric indicates that the bot does not accept challenges.
	DeclineGeneric DeclineReason = "generic"

	// DeclineLater indicates that the bot does not accept challenges right
	// now, but may later.
	DeclineLater DeclineReason = "later"

	// DeclineTooFast indicates that the time control is too fast for the bot.
	DeclineTooFast DeclineReason = "tooFast"

	// DeclineTooSlow indicates that the time control is too slow for the bot.
	DeclineTooSlow DeclineReason = "tooSlow"

	// DeclineTimeControl indicates that the bot does not accept challenges
	// with the given time control.
	DeclineTimeControl DeclineReason = "timeControl"

	// DeclineRated indicates that the bot wants a rated challenge.
	DeclineRated DeclineReason = "rated"

	// DeclineCasual indicates that the bot wants a casual challenge.
	DeclineCasual DeclineReason = "casual"

	// DeclineStandard indicates that the bot only accepts standard chess.
	DeclineStandard DeclineReason = "standard"

	// DeclineVariant indicates that the bot does not accept challenges of
	// the given variant.
	DeclineVariant DeclineReason = "variant"

	// DeclineNoBot indicates that the bot does not accept challenges from
	// other bots.
	DeclineNoBot DeclineReason = "noBot"

	// DeclineOnlyBot indicates that the bot only accepts challenges from
	// other bots.
	DeclineOnlyBot DeclineReason = "onlyBot"
)

// Challenge is a challenge as delivered on the event stream or listed by
// the challenge endpoint. DeclineReason (free text) and DeclineReasonKey
// (typed) are two wire representations of the same concept; the protocol
// does not guarantee they agree and no validation is performed between
// them.
type Challenge struct {
	ID               string              `json:"id"`
	URL              string              `json:"url"`
	Status           ChallengeStatus     `json:"status"`
	Challenger       User                `json:"challenger"`
	DestUser         *User               `json:"destUser"`
	Variant          *Variant            `json:"-"`
	Rated            bool                `json:"rated"`
	Speed            Speed               `json:"speed"`
	TimeControl      TimeControl         `json:"timeControl"`
	Color            ChallengeColor      `json:"color"`
	Perf             ChallengePerf       `json:"perf"`
	Direction        *ChallengeDirection `json:"direction"`
	InitialFEN       *string             `json:"initialFen"`
	DeclineReason    *string             `json:"declineReason"`
	DeclineReasonKey *DeclineReason      `json:"declineReasonKey"`
}

// UnmarshalJSON decodes a challenge, applying the variant object's
// empty-object fallback.
func (c *Challenge) UnmarshalJSON(data []byte) error {
	type alias Challenge
	aux := struct {
		*alias
		Variant json.RawMessage `json:"variant"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	variant, err := parseOptionalVariant(aux.Variant)
	if err != nil {
		return err
	}
	c.Variant = variant
	return nil
}

// Challenges is the pending-challenge listing: challenges received and
// challenges sent.
type Challenges struct {
	In  []Challenge `json:"in"`
	Out []Challenge `json:"out"`
}
