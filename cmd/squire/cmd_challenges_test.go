package main

import (
	"strings"
	"testing"

	"squire/pkg/lichess"
)

func TestFormatChallenges(t *testing.T) {
	t.Run("empty listing", func(t *testing.T) {
		got := formatChallenges(&lichess.Challenges{})
		if got != "No pending challenges.\n" {
			t.Errorf("formatChallenges() = %q", got)
		}
	})

	t.Run("incoming and outgoing", func(t *testing.T) {
		standard := lichess.VariantStandard
		dest := lichess.User{ID: "maia1", Name: "maia1"}
		listing := &lichess.Challenges{
			In: []lichess.Challenge{{
				ID:         "7pGLxJ4F",
				Challenger: lichess.User{ID: "thibot", Name: "thibot"},
				Variant:    &standard,
				Rated:      true,
				Speed:      lichess.SpeedBlitz,
			}},
			Out: []lichess.Challenge{{
				ID:         "aaaabbbb",
				Challenger: lichess.User{ID: "squire", Name: "squire"},
				DestUser:   &dest,
				Speed:      lichess.SpeedRapid,
			}},
		}

		got := formatChallenges(listing)
		for _, want := range []string{
			"Incoming:", "7pGLxJ4F", "thibot vs open", "standard blitz rated",
			"Outgoing:", "aaaabbbb", "squire vs maia1", "rapid casual",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
	})
}

func TestRootCmdWiring(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"profile", "challenges", "accept", "decline", "move", "chat", "listen"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %s not registered: %v", name, err)
		}
	}
}
