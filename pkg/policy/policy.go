// Package policy decides whether to accept incoming challenges, from rules
// loaded out of a YAML file.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"squire/pkg/lichess"
)

// Opponent groups accepted by a policy.
const (
	OpponentsAll    = "all"
	OpponentsHumans = "humans"
	OpponentsBots   = "bots"
)

// Policy is the rule set applied to each incoming challenge. Empty variant
// and speed lists allow everything; zero rating bounds are ignored.
type Policy struct {
	// Variants lists the acceptable variants.
	Variants []lichess.Variant `yaml:"variants"`

	// Speeds lists the acceptable speed bands.
	Speeds []lichess.Speed `yaml:"speeds"`

	// Rated and Casual accept the respective challenge modes.
	Rated  bool `yaml:"rated"`
	Casual bool `yaml:"casual"`

	// Opponents is "all", "humans" or "bots".
	Opponents string `yaml:"opponents"`

	// MinRating and MaxRating bound the challenger's rating when set.
	MinRating int `yaml:"min_rating"`
	MaxRating int `yaml:"max_rating"`
}

// Default accepts any challenge.
func Default() Policy {
	return Policy{Rated: true, Casual: true, Opponents: OpponentsAll}
}

// Load reads a policy from a YAML file. Fields left out keep their zero
// value; a rule the file never mentions therefore declines, except the
// list rules which allow everything when empty.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy %s: %w", path, err)
	}
	if p.Opponents == "" {
		p.Opponents = OpponentsAll
	}
	return p, nil
}

// Decision is the outcome of applying a policy to one challenge.
type Decision struct {
	Accept bool

	// Reason explains a rejection to the challenger. Unset when Accept.
	Reason lichess.DeclineReason
}

func accept() Decision                         { return Decision{Accept: true} }
func decline(r lichess.DeclineReason) Decision { return Decision{Reason: r} }

// speedOrder ranks speed bands from fastest to slowest, for telling a too
// fast rejection from a too slow one.
var speedOrder = map[lichess.Speed]int{
	lichess.SpeedUltraBullet:    0,
	lichess.SpeedBullet:         1,
	lichess.SpeedBlitz:          2,
	lichess.SpeedRapid:          3,
	lichess.SpeedClassical:      4,
	lichess.SpeedCorrespondence: 5,
}

// Decide applies the policy's rules in a fixed order and returns the first
// rejection, or acceptance when every rule passes.
func (p Policy) Decide(c lichess.Challenge) Decision {
	if d := p.checkVariant(c.Variant); !d.Accept {
		return d
	}
	if d := p.checkSpeed(c.Speed); !d.Accept {
		return d
	}
	if c.Rated && !p.Rated {
		return decline(lichess.DeclineCasual)
	}
	if !c.Rated && !p.Casual {
		return decline(lichess.DeclineRated)
	}
	if d := p.checkOpponent(c.Challenger); !d.Accept {
		return d
	}
	if c.Challenger.Rating != nil {
		rating := *c.Challenger.Rating
		if p.MinRating > 0 && rating < p.MinRating {
			return decline(lichess.DeclineGeneric)
		}
		if p.MaxRating > 0 && rating > p.MaxRating {
			return decline(lichess.DeclineGeneric)
		}
	}
	return accept()
}

func (p Policy) checkVariant(v *lichess.Variant) Decision {
	if len(p.Variants) == 0 {
		return accept()
	}
	if v != nil {
		for _, allowed := range p.Variants {
			if *v == allowed {
				return accept()
			}
		}
	}
	if len(p.Variants) == 1 && p.Variants[0] == lichess.VariantStandard {
		return decline(lichess.DeclineStandard)
	}
	return decline(lichess.DeclineVariant)
}

func (p Policy) checkSpeed(s lichess.Speed) Decision {
	if len(p.Speeds) == 0 {
		return accept()
	}
	slowest, fastest := -1, -1
	for _, allowed := range p.Speeds {
		rank, ok := speedOrder[allowed]
		if !ok {
			continue
		}
		if fastest == -1 || rank < fastest {
			fastest = rank
		}
		if rank > slowest {
			slowest = rank
		}
	}
	rank, ok := speedOrder[s]
	if ok && fastest != -1 {
		if rank < fastest {
			return decline(lichess.DeclineTooFast)
		}
		if rank > slowest {
			return decline(lichess.DeclineTooSlow)
		}
		for _, allowed := range p.Speeds {
			if s == allowed {
				return accept()
			}
		}
	}
	return decline(lichess.DeclineTimeControl)
}

func (p Policy) checkOpponent(challenger lichess.User) Decision {
	isBot := challenger.Title != nil && *challenger.Title == lichess.TitleBOT
	switch p.Opponents {
	case OpponentsHumans:
		if isBot {
			return decline(lichess.DeclineNoBot)
		}
	case OpponentsBots:
		if !isBot {
			return decline(lichess.DeclineOnlyBot)
		}
	}
	return accept()
}
