package game

import "strconv"

type Suit string

const (
	Hearts   Suit = "HEARTS"
	Diamonds Suit = "DIAMONDS"
	Clubs    Suit = "CLUBS"
	Spades   Suit = "SPADES"
)

// Face tokens as reported by the deck provider.
const (
	Ten   = "TEN"
	Jack  = "JACK"
	Queen = "QUEEN"
	King  = "KING"
	Ace   = "ACE"
)

const (
	minPipRank = 2
	maxPipRank = 10
)

var faceRanks = map[string]int{
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

// CardInfo is a single draw record received from a DeckProvider.
type CardInfo struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
	Image string `json:"image"`
}

// Card is a drawn playing card. Cards compare by rank only.
type Card struct {
	rank   int
	suit   string
	image  string
	isLast bool
}

// NewCard resolves the rank of info. isLast marks the final card of its deck.
func NewCard(info CardInfo, isLast bool) (Card, error) {
	rank, err := ParseRank(info.Value)
	if err != nil {
		return Card{}, err
	}
	return Card{
		rank:   rank,
		suit:   info.Suit,
		image:  info.Image,
		isLast: isLast,
	}, nil
}

// ParseRank maps a face token to 10-14, otherwise parses an unsigned
// base-10 pip value between 2 and 10.
func ParseRank(value string) (int, error) {
	if rank, ok := faceRanks[value]; ok {
		return rank, nil
	}
	rank, err := strconv.Atoi(value)
	if err != nil || rank < minPipRank || rank > maxPipRank || strconv.Itoa(rank) != value {
		return 0, &InvalidCardValueError{Value: value}
	}
	return rank, nil
}

func (c Card) Rank() int { return c.rank }
func (c Card) Suit() string { return c.suit }
func (c Card) Image() string { return c.image }

// IsLast reports whether the card emptied its deck.
func (c Card) IsLast() bool { return c.isLast }

func (c Card) view() CardView {
	return CardView{Value: c.rank, Suit: c.suit, Image: c.image}
}
