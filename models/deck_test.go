package models

import "testing"

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	if len(deck) != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, len(deck))
	}

	seen := make(map[Card]bool)
	for _, card := range deck {
		if seen[card] {
			t.Errorf("duplicate card %v%v", card.Rank, card.Suit)
		}
		seen[card] = true
	}
}

func TestShuffleDeckIsPermutation(t *testing.T) {
	original := NewDeck()
	shuffled := ShuffleDeck(append([]Card{}, original...))

	if len(shuffled) != len(original) {
		t.Fatalf("shuffle changed deck size: %d -> %d", len(original), len(shuffled))
	}

	counts := make(map[Card]int)
	for _, card := range original {
		counts[card]++
	}
	for _, card := range shuffled {
		counts[card]--
	}
	for card, n := range counts {
		if n != 0 {
			t.Errorf("card %v%v count off by %d after shuffle", card.Rank, card.Suit, n)
		}
	}
}

func TestShuffleDeckShortDecks(t *testing.T) {
	if got := ShuffleDeck([]Card{}); len(got) != 0 {
		t.Errorf("shuffling empty deck returned %d cards", len(got))
	}

	single := []Card{{Suit: Spades, Rank: Ace}}
	got := ShuffleDeck(single)
	if len(got) != 1 || got[0] != single[0] {
		t.Errorf("shuffling single-card deck changed it: %v", got)
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 1},
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, -1},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		got := CardValue(Card{Suit: Hearts, Rank: tt.rank})
		if got != tt.want {
			t.Errorf("CardValue(%v) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}
