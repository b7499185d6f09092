package buffers_test

import (
	"testing"

	"github.com/albertgoncalves/pathrs/buffers"
)

// Empty uploads return before any device call, so a zero-value buffer with
// no GL context is safe here.
func TestUploadEmptyIsNoOp(t *testing.T) {

	var ib buffers.InstanceBuffer

	if err := ib.Upload(nil); err != nil {
		t.Fatalf("empty upload returned %v", err)
	}
	if ib.Capacity() != 0 {
		t.Fatalf("empty upload changed capacity to %d", ib.Capacity())
	}
}

func TestNextCapacity(t *testing.T) {

	tests := []struct {
		name   string
		cur    int
		needed int
		want   int
	}{
		{"fits already", 64, 64, 64},
		{"fits with room", 64, 10, 64},
		{"one doubling", 64, 65, 128},
		{"multiple doublings", 16, 1000, 1024},
		{"from zero", 0, 3, 4},
		{"from one", 1, 100, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			if got := buffers.NextCapacity(tc.cur, tc.needed); got != tc.want {
				t.Fatalf("NextCapacity(%d, %d) = %d, want %d", tc.cur, tc.needed, got, tc.want)
			}
		})
	}
}

func TestNextCapacityNeverShrinks(t *testing.T) {

	for cur := 1; cur <= 1024; cur *= 2 {
		for needed := 0; needed <= cur; needed++ {

			if got := buffers.NextCapacity(cur, needed); got != cur {
				t.Fatalf("NextCapacity(%d, %d) = %d, shrank or grew needlessly", cur, needed, got)
			}
		}
	}
}
