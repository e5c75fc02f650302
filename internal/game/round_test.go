package game

import (
	"math/rand"
	"testing"
)

// scriptedRand returns queued Intn values and leaves Shuffle as identity.
type scriptedRand struct {
	ints []int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Shuffle(int, func(i, j int)) {}

func TestSelectRoundContentRerollsPrevious(t *testing.T) {
	rng := &scriptedRand{ints: []int{2, 2, 2, 4}}
	rc := SelectRoundContent(rng, 6, 2)
	if rc.Answer != 4 {
		t.Fatalf("answer %d want 4", rc.Answer)
	}
	if len(rng.ints) != 0 {
		t.Fatalf("expected three re-rolls, %d draws left", len(rng.ints))
	}
}

func TestSelectRoundContentOverlap(t *testing.T) {
	rc := SelectRoundContent(&scriptedRand{ints: []int{1}}, 6, -1)
	// rest is 0,2,3,4,5 unshuffled
	if rc.Shapes != [3]int{0, 2, 3} {
		t.Errorf("shapes %v", rc.Shapes)
	}
	if rc.Colors != [3]int{3, 4, 5} {
		t.Errorf("colors %v", rc.Colors)
	}
}

func TestSelectRoundContentProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	previous := -1
	for i := 0; i < 2000; i++ {
		rc := SelectRoundContent(rng, 6, previous)
		if rc.Answer == previous {
			t.Fatalf("draw %d repeated answer %d", i, rc.Answer)
		}
		if rc.Answer < 0 || rc.Answer >= 6 {
			t.Fatalf("draw %d answer %d out of range", i, rc.Answer)
		}
		seen := map[int]bool{}
		for _, s := range rc.Shapes {
			if s == rc.Answer {
				t.Fatalf("draw %d: answer %d among decoy shapes %v", i, rc.Answer, rc.Shapes)
			}
			if seen[s] {
				t.Fatalf("draw %d: duplicate decoy %v", i, rc.Shapes)
			}
			seen[s] = true
		}
		for _, c := range rc.Colors {
			if c == rc.Answer {
				t.Fatalf("draw %d: answer %d among decoy colors %v", i, rc.Answer, rc.Colors)
			}
		}
		if rc.Shapes[2] != rc.Colors[0] {
			t.Fatalf("draw %d: shapes %v and colors %v do not overlap at index 2", i, rc.Shapes, rc.Colors)
		}
		previous = rc.Answer
	}
}

func TestSelectRoundContentCoversEveryAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make([]int, 6)
	previous := -1
	for i := 0; i < 600; i++ {
		rc := SelectRoundContent(rng, 6, previous)
		counts[rc.Answer]++
		previous = rc.Answer
	}
	for k, n := range counts {
		if n == 0 {
			t.Errorf("answer %d never drawn", k)
		}
	}
}
