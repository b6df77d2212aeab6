package bot

import (
	"testing"

	"squire/pkg/lichess"
)

func strPtr(s string) *string { return &s }

func TestSeatOf(t *testing.T) {
	tests := []struct {
		name     string
		playerID string
		info     lichess.GameInfo
		expected *lichess.Color
	}{
		{
			name:     "holds the white seat",
			playerID: "squire",
			info: lichess.GameInfo{
				White: lichess.GamePlayer{ID: strPtr("squire")},
				Black: lichess.GamePlayer{ID: strPtr("thibot")},
			},
			expected: colorPtr(lichess.ColorWhite),
		},
		{
			name:     "holds the black seat",
			playerID: "squire",
			info: lichess.GameInfo{
				White: lichess.GamePlayer{ID: strPtr("thibot")},
				Black: lichess.GamePlayer{ID: strPtr("squire")},
			},
			expected: colorPtr(lichess.ColorBlack),
		},
		{
			name:     "holds neither seat",
			playerID: "squire",
			info: lichess.GameInfo{
				White: lichess.GamePlayer{ID: strPtr("thibot")},
				Black: lichess.GamePlayer{ID: strPtr("maia1")},
			},
			expected: nil,
		},
		{
			name:     "anonymous seats",
			playerID: "squire",
			info:     lichess.GameInfo{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seatOf(tt.playerID, &tt.info)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("seatOf() = %v, want %v", got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("seatOf() = %v, want %v", *got, *tt.expected)
			}
		})
	}
}

func colorPtr(c lichess.Color) *lichess.Color { return &c }
