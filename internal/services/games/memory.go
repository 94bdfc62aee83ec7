package games

import (
	"fmt"
	"sync"

	"github.com/mcoot/gameportal/internal/dependencies/random"
	"github.com/mcoot/gameportal/internal/model"
)

// MemoryIcons is the number of distinct icons, numbered 1..MemoryIcons
const MemoryIcons = 6

// PressResult reports what a single press did to a Memory Clicker game
type PressResult struct {
	Correct       bool
	LevelComplete bool
	GameOver      bool
}

// MemoryClicker is a sequence-recall game. Level L shows L+2 icons; repeating
// them all adds L*10 points and advances, a wrong press ends the game.
type MemoryClicker struct {
	random random.Random

	mu       sync.Mutex
	active   bool
	over     bool
	level    int
	score    int
	sequence []int
	pos      int
}

// NewMemoryClicker creates a game that has not started yet
func NewMemoryClicker(rnd random.Random) *MemoryClicker {
	return &MemoryClicker{random: rnd}
}

// Start begins at level 1 and returns the first sequence to show
func (m *MemoryClicker) Start() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
	m.over = false
	m.level = 1
	m.score = 0
	m.nextSequence()
	return m.sequenceCopy()
}

// Sequence returns the sequence for the current level
func (m *MemoryClicker) Sequence() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sequenceCopy()
}

// Level returns the current level
func (m *MemoryClicker) Level() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// Score returns the points accumulated so far
func (m *MemoryClicker) Score() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Press records the player's next icon
func (m *MemoryClicker) Press(icon int) (PressResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return PressResult{}, model.ErrRoundNotActive
	}
	if icon < 1 || icon > MemoryIcons {
		return PressResult{}, model.ErrInvalidChoice
	}

	if m.sequence[m.pos] != icon {
		m.active = false
		m.over = true
		return PressResult{GameOver: true}, nil
	}

	m.pos++
	if m.pos < len(m.sequence) {
		return PressResult{Correct: true}, nil
	}

	m.score += m.level * 10
	m.level++
	m.nextSequence()
	return PressResult{Correct: true, LevelComplete: true}, nil
}

// Outcome returns the result once a wrong press has ended the game
func (m *MemoryClicker) Outcome() (model.GameOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.over {
		return model.GameOutcome{}, model.ErrRoundNotActive
	}
	return model.GameOutcome{
		GameSlug: model.GameMemoryClicker,
		GameName: nameOf(model.GameMemoryClicker),
		Score:    m.score,
		Result:   fmt.Sprintf("Level %d reached", m.level),
	}, nil
}

func (m *MemoryClicker) nextSequence() {
	m.sequence = make([]int, m.level+2)
	for i := range m.sequence {
		m.sequence[i] = m.random.Intn(MemoryIcons) + 1
	}
	m.pos = 0
}

func (m *MemoryClicker) sequenceCopy() []int {
	out := make([]int, len(m.sequence))
	copy(out, m.sequence)
	return out
}
