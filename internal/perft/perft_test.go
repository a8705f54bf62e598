package perft

import (
	"testing"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// Known node counts for the standard starting position.
// See https://www.chessprogramming.org/Perft_Results
func TestCountStartingPosition(t *testing.T) {
	testcases := []struct {
		depth int
		want  int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range testcases {
		p := position.StartingPosition()
		if got := Count(p, pieces.White, tc.depth); got != tc.want {
			t.Errorf("Count(depth=%d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}
