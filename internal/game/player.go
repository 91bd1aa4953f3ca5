package game

// Player is one participant of a Game. Players are owned by their game.
type Player struct {
	name   string
	deckID string
	score  int
}

// NewPlayer creates a player with no deck and a zero score
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

func (p *Player) Name() string { return p.name }
func (p *Player) DeckID() string { return p.deckID }
func (p *Player) Score() int { return p.score }

// AssignDeck sets the deck the player draws from.
func (p *Player) AssignDeck(deckID string) {
	p.deckID = deckID
}

// AddScore increments the score. Negative deltas are ignored.
func (p *Player) AddScore(delta int) {
	if delta < 0 {
		return
	}
	p.score += delta
}
