package boardfmt

import (
	"strings"
	"testing"

	"github.com/benthic/plankton/position"
)

func TestFormatBoardContainsFileLabels(t *testing.T) {
	p := position.StartingPosition()
	out := FormatBoard(p)
	if !strings.Contains(out, "a  b  c  d  e  f  g  h") {
		t.Errorf("FormatBoard output missing file labels:\n%s", out)
	}
	if strings.Count(out, "\n") != 9 {
		t.Errorf("FormatBoard should render 8 ranks plus a label line, got:\n%s", out)
	}
}

func TestFormatBitboardMarksSetBits(t *testing.T) {
	out := FormatBitboard(1) // a1
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[7], "1  x") {
		t.Errorf("FormatBitboard(a1) rank-1 line = %q, want it to start with an x", lines[7])
	}
}
