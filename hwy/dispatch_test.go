package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	cases := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchAVX2:      "avx2",
		DispatchAVX512:    "avx512",
		DispatchNEON:      "neon",
		DispatchSVE:       "sve",
		DispatchLevel(99): "unknown",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(level), got, want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	width := CurrentWidth()
	if width < 16 || width&(width-1) != 0 {
		t.Errorf("CurrentWidth: got %d, want a power of two >= 16", width)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName: got %q, want %q", CurrentName(), CurrentLevel().String())
	}
}

func TestMaxLanes(t *testing.T) {
	if got, want := MaxLanes[uint8](), CurrentWidth(); got != want {
		t.Errorf("MaxLanes[uint8]: got %d, want %d", got, want)
	}
	if got, want := MaxLanes[uint32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[uint32]: got %d, want %d", got, want)
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv with empty value should be false")
	}
	t.Setenv("HWY_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("NoSimdEnv with \"false\" should be false")
	}
	t.Setenv("HWY_NO_SIMD", "1")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv with \"1\" should be true")
	}
	t.Setenv("HWY_NO_SIMD", "yes")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv with a non-bool value should be true")
	}
}
