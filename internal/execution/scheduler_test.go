package execution

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		workers int
		want    [][]int
	}{
		{name: "even split", count: 4, workers: 2, want: [][]int{{0, 2}, {1, 3}}},
		{name: "more workers than cases", count: 2, workers: 3, want: [][]int{{0}, {1}, {}}},
		{name: "zero workers means one", count: 3, workers: 0, want: [][]int{{0, 1, 2}}},
	}

	s := NewRoundRobinScheduler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Schedule(tt.count, tt.workers)); diff != "" {
				t.Errorf("Schedule() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
