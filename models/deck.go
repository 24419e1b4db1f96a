package models

import "math/rand/v2"

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// DeckSize is the number of cards in a full deck
const DeckSize = 52

// NewDeck returns a fresh 52-card deck, one card per suit/rank pair.
// The order is suit-major and only meaningful before shuffling.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// ShuffleDeck shuffles the deck in place with a Fisher-Yates pass and
// returns it. Decks of length 0 or 1 are left as-is.
func ShuffleDeck(deck []Card) []Card {
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
