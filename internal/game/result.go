package game

// CardView is the public projection of a drawn card.
type CardView struct {
	Value int    `json:"value"`
	Suit  string `json:"suit"`
	Image string `json:"image"`
}

type RoundInfo struct {
	PlayerName string   `json:"player_name"`
	Score      int      `json:"score"`
	DrawnCard  CardView `json:"drawn_card"`
}

// Result is returned by every advance of a game.
// Winner is nil while the game runs and when it ends in a tie.
type Result struct {
	RoundInfo []RoundInfo `json:"round_info"`
	Finished  bool        `json:"finished"`
	Winner    *string     `json:"winner"`
}

// WinnerName returns the winner and whether there is one.
func (r Result) WinnerName() (string, bool) {
	if r.Winner == nil {
		return "", false
	}
	return *r.Winner, true
}
