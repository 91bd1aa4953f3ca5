package game

type draw struct {
	player *Player
	card   Card
}

// Round holds the cards drawn by each player during one advance.
type Round struct {
	draws []draw
}

func NewRound() *Round {
	return &Round{draws: make([]draw, 0, 2)}
}

// RecordDraw appends the card drawn by p. Draws are kept in player order.
func (r *Round) RecordDraw(p *Player, c Card) {
	r.draws = append(r.draws, draw{player: p, card: c})
}

// Winner compares the ranks of the first two draws. A tie returns nil
// without error; suits never break ties.
func (r *Round) Winner() (*Player, error) {
	if len(r.draws) < 2 {
		return nil, ErrInsufficientPlayers
	}

	first, second := r.draws[0], r.draws[1]
	switch {
	case first.card.Rank() > second.card.Rank():
		return first.player, nil
	case second.card.Rank() > first.card.Rank():
		return second.player, nil
	default:
		return nil, nil
	}
}

// IsLast reports whether any draw of the round emptied its deck.
func (r *Round) IsLast() bool {
	for _, d := range r.draws {
		if d.card.IsLast() {
			return true
		}
	}
	return false
}

// Summary projects each draw with the player's current score.
func (r *Round) Summary() []RoundInfo {
	info := make([]RoundInfo, 0, len(r.draws))
	for _, d := range r.draws {
		info = append(info, RoundInfo{
			PlayerName: d.player.Name(),
			Score:      d.player.Score(),
			DrawnCard:  d.card.view(),
		})
	}
	return info
}
