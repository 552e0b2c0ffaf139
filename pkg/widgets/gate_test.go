package widgets

import "testing"

func TestRenderPhase(t *testing.T) {
	tests := []struct {
		heightResolved bool
		ready          bool
		want           RenderPhase
	}{
		{false, false, PhaseSuppressed},
		{false, true, PhaseSuppressed},
		{true, false, PhasePlaceholder},
		{true, true, PhaseLive},
	}
	for _, tt := range tests {
		if got := renderPhase(tt.heightResolved, tt.ready); got != tt.want {
			t.Errorf("renderPhase(%v, %v) = %s, want %s", tt.heightResolved, tt.ready, got, tt.want)
		}
	}
}

func TestRenderPhase_String(t *testing.T) {
	if PhasePlaceholder.String() != "placeholder" {
		t.Errorf("String() = %q", PhasePlaceholder.String())
	}
	if RenderPhase(9).String() != "RenderPhase(9)" {
		t.Errorf("String() = %q", RenderPhase(9).String())
	}
}
