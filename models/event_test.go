package models

import "testing"

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name   string
		goal   float64
		raised float64
		want   float64
	}{
		{name: "zero goal yields zero", goal: 0, raised: 500, want: 0},
		{name: "negative goal yields zero", goal: -10, raised: 500, want: 0},
		{name: "halfway", goal: 1000, raised: 500, want: 50},
		{name: "overfunded clamps to 100", goal: 1000, raised: 2500, want: 100},
		{name: "nothing raised", goal: 1000, raised: 0, want: 0},
		{name: "exactly funded", goal: 750, raised: 750, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FundraisingEvent{FundraisingGoal: tt.goal, AmountRaised: tt.raised}
			if got := e.ComputeProgress(); got != tt.want {
				t.Errorf("ComputeProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}
