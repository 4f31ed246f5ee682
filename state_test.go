package trailerd

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Listening, "listening"},
		{Discovering, "discovering"},
		{Discovered, "discovered"},
		{Registering, "registering"},
		{Ready, "ready"},
		{Failed, "failed"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Fatalf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}
