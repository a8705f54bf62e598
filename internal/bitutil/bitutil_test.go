package bitutil

import "testing"

func TestPopLSB(t *testing.T) {
	testcases := []struct {
		name     string
		bb       uint64
		wantIdx  int
		wantRest uint64
	}{
		{"single bit", 1 << 10, 10, 0},
		{"two bits", (1 << 3) | (1 << 40), 3, 1 << 40},
		{"bit zero", 0x1, 0, 0},
	}

	for _, tc := range testcases {
		bb := tc.bb
		idx := PopLSB(&bb)
		if idx != tc.wantIdx || bb != tc.wantRest {
			t.Errorf("%s: PopLSB(%#x) = (%d, %#x), want (%d, %#x)",
				tc.name, tc.bb, idx, bb, tc.wantIdx, tc.wantRest)
		}
	}
}

func TestCountBits(t *testing.T) {
	if got := CountBits(0); got != 0 {
		t.Errorf("CountBits(0) = %d, want 0", got)
	}
	if got := CountBits(0xFF); got != 8 {
		t.Errorf("CountBits(0xFF) = %d, want 8", got)
	}
}

func TestBitScan(t *testing.T) {
	if got := BitScan(1 << 17); got != 17 {
		t.Errorf("BitScan(1<<17) = %d, want 17", got)
	}
}
