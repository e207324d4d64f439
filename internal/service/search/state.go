package search

import (
	"slices"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
)

// View identifies which screen the presentation layer shows.
type View string

const (
	ViewSearch    View = "search"
	ViewFavorites View = "favorites"
)

// State is the controller's observable state, handed to the presentation
// layer as a value snapshot.
//
// After any completed search at most one of Current and Err is set. While
// Loading is true both carry the previous search and should be ignored by
// the view.
type State struct {
	Query     string
	Current   *domain.Word
	Loading   bool
	Err       *domain.LookupError
	View      View
	Favorites []string
}

// IsFavorite reports whether the given word is in the favorites list.
func (s State) IsFavorite(word string) bool {
	return slices.Contains(s.Favorites, word)
}
