package models

// Suit of a playing card
type Suit string

// Card suits
const (
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Spades   Suit = "S"
)

// Rank of a playing card
type Rank string

// Card ranks
const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Hidden is the sentinel used in redacted views for both suit and rank
const Hidden = "hidden"

// Card is a single playing card. Immutable once dealt.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// HiddenCard is what other players see in place of a real card
var HiddenCard = Card{Suit: Hidden, Rank: Hidden}

// CardValue returns the score of a card: A=1, K/Q=10, J=-1 (skip/reverse
// special), numeric ranks their face value. Exposed for game rules built
// on top of the room engine; the draw action itself does not score cards.
func CardValue(c Card) int {
	switch c.Rank {
	case Ace:
		return 1
	case King, Queen:
		return 10
	case Jack:
		return -1
	case Ten:
		return 10
	default:
		// single-digit numeric rank
		return int(c.Rank[0] - '0')
	}
}
