package game

import "lukechampine.com/frand"

// NumDice is the number of binary dice thrown each turn.
const NumDice = 4

// RollDice throws four two-sided dice and counts the marked faces, giving
// 0 through 4 with probabilities 1/16, 4/16, 6/16, 4/16 and 1/16.
func RollDice(rng *frand.RNG) int {
	roll := 0
	for i := 0; i < NumDice; i++ {
		roll += rng.Intn(2)
	}
	return roll
}
