package games

import (
	"fmt"

	"github.com/mcoot/gameportal/internal/dependencies/random"
	"github.com/mcoot/gameportal/internal/model"
)

// LuckyBoxCount is the number of boxes offered per round
const LuckyBoxCount = 3

// Prize is something that can be found in a lucky box
type Prize struct {
	Name   string
	Points int
	Rarity string
	// Weight is the chance out of 100 of drawing this prize
	Weight int
}

// Prizes in draw order. Weights sum to 100.
var Prizes = []Prize{
	{Name: "Diamond", Points: 100, Rarity: "Legendary", Weight: 5},
	{Name: "Crown", Points: 80, Rarity: "Epic", Weight: 10},
	{Name: "Trophy", Points: 60, Rarity: "Rare", Weight: 15},
	{Name: "Gold Coins", Points: 40, Rarity: "Uncommon", Weight: 20},
	{Name: "Gift Box", Points: 30, Rarity: "Common", Weight: 20},
	{Name: "Star", Points: 20, Rarity: "Common", Weight: 15},
	{Name: "Lucky Clover", Points: 15, Rarity: "Common", Weight: 10},
	{Name: "Balloon", Points: 10, Rarity: "Common", Weight: 5},
}

// LuckyBox draws weighted prizes
type LuckyBox struct {
	random random.Random
}

// NewLuckyBox creates a LuckyBox
func NewLuckyBox(rnd random.Random) *LuckyBox {
	return &LuckyBox{random: rnd}
}

// Open picks box (0-based) and returns the prize inside. The box chosen does
// not affect the draw.
func (b *LuckyBox) Open(box int) (Prize, model.GameOutcome, error) {
	if box < 0 || box >= LuckyBoxCount {
		return Prize{}, model.GameOutcome{}, model.ErrInvalidChoice
	}

	prize := drawPrize(b.random.Intn(100))
	return prize, model.GameOutcome{
		GameSlug: model.GameLuckyBox,
		GameName: nameOf(model.GameLuckyBox),
		Score:    prize.Points,
		Result:   fmt.Sprintf("Found %s (%s)", prize.Name, prize.Rarity),
	}, nil
}

// drawPrize maps a roll in [0, 100) onto the cumulative weights
func drawPrize(roll int) Prize {
	threshold := 0
	for _, p := range Prizes {
		threshold += p.Weight
		if roll < threshold {
			return p
		}
	}
	return Prizes[len(Prizes)-1]
}
