package model

// GameSlug identifies one of the portal's mini-games
type GameSlug string

const (
	GameTapCounter    GameSlug = "tap-counter"
	GameMemoryClicker GameSlug = "memory-clicker"
	GameLuckyBox      GameSlug = "lucky-box"
)

// AllGames lists every known game in catalog order
var AllGames = []GameSlug{GameTapCounter, GameMemoryClicker, GameLuckyBox}

// Valid reports whether the slug names a known game
func (s GameSlug) Valid() bool {
	for _, g := range AllGames {
		if g == s {
			return true
		}
	}
	return false
}

// GameResultID uniquely identifies a saved game result
type GameResultID string

// GameOutcome is what a finished round reports before it is stamped and saved
type GameOutcome struct {
	GameSlug GameSlug `json:"gameSlug"`
	GameName string   `json:"gameName"`
	Score    int      `json:"score"`
	Result   string   `json:"result"` // human-readable summary, e.g. "42 taps in 10 seconds"
}

// GameResult is one completed round as stored in the history
type GameResult struct {
	ID        GameResultID `json:"id"`
	GameSlug  GameSlug     `json:"gameSlug"`
	GameName  string       `json:"gameName"`
	Score     int          `json:"score"`
	Result    string       `json:"result"`
	Timestamp int64        `json:"timestamp"` // milliseconds since epoch
	UserID    UserID       `json:"userId"`
}

// RecentGamesLimit is how many results Stats.RecentGames holds at most
const RecentGamesLimit = 5

// Stats aggregates a user's results, optionally for a single game
type Stats struct {
	TotalGames  int          `json:"totalGames"`
	BestScore   int          `json:"bestScore"`
	RecentGames []GameResult `json:"recentGames"`
}
