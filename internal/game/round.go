package game

import "odd-one-out/internal/shapes"

// Rand is the randomness the game needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RoundContent is what one round shows: the hidden answer, three decoy shapes
// and the three colors they are drawn in. All values are catalog indices.
type RoundContent struct {
	Answer int
	Shapes [shapes.DecoyCount]int
	Colors [shapes.DecoyCount]int
}

// SelectRoundContent draws a round from n catalog entries. The answer is drawn
// uniformly and re-drawn while it equals previous. The other n-1 indices are
// shuffled; decoy shapes are the first three and decoy colors the third to
// fifth, so the last decoy's shape and the first decoy's color share an index.
// n must be at least 6.
func SelectRoundContent(rng Rand, n, previous int) RoundContent {
	answer := rng.Intn(n)
	for answer == previous {
		answer = rng.Intn(n)
	}

	rest := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != answer {
			rest = append(rest, i)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	rc := RoundContent{Answer: answer}
	copy(rc.Shapes[:], rest[0:3])
	copy(rc.Colors[:], rest[2:5])
	return rc
}
