package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/service/search"
)

func renderToString(st search.State) string {
	var buf bytes.Buffer
	Render(&buf, st)
	return buf.String()
}

func TestRender_Word(t *testing.T) {
	t.Parallel()

	st := search.State{
		View: search.ViewSearch,
		Current: &domain.Word{
			Word: "свет",
			Definitions: []domain.Definition{
				{ID: 1, Meaning: "лучистая энергия", PartOfSpeech: "существительное", Examples: []string{"Солнечный свет залил комнату."}},
				{ID: 2, Meaning: "мир, вселенная", PartOfSpeech: "", Examples: []string{}},
			},
			Synonyms: []string{"освещение", "сияние"},
		},
		Favorites: []string{},
	}

	out := renderToString(st)
	assert.Contains(t, out, "свет")
	assert.Contains(t, out, "1. [существительное] лучистая энергия")
	assert.Contains(t, out, "◆ Солнечный свет залил комнату.")
	assert.Contains(t, out, "2. мир, вселенная")
	assert.Contains(t, out, "Синонимы: освещение, сияние")
	assert.NotContains(t, out, "★", "word not in favorites gets no marker")
}

func TestRender_FavoriteMarker(t *testing.T) {
	t.Parallel()

	st := search.State{
		View: search.ViewSearch,
		Current: &domain.Word{
			Word:        "свет",
			Definitions: []domain.Definition{{ID: 1, Meaning: "что-то", Examples: []string{}}},
			Synonyms:    []string{},
		},
		Favorites: []string{"свет"},
	}

	assert.Contains(t, renderToString(st), "★")
}

func TestRender_NoSynonymsSectionWhenEmpty(t *testing.T) {
	t.Parallel()

	st := search.State{
		View: search.ViewSearch,
		Current: &domain.Word{
			Word:        "свет",
			Definitions: []domain.Definition{{ID: 1, Meaning: "что-то", Examples: []string{}}},
			Synonyms:    []string{},
		},
		Favorites: []string{},
	}

	assert.NotContains(t, renderToString(st), "Синонимы")
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind domain.ErrorKind
		want string
	}{
		{domain.KindNotFound, "Слово не найдено"},
		{domain.KindServer, "Ошибка сервера"},
		{domain.KindConnection, "Ошибка подключения"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			st := search.State{
				View: search.ViewSearch,
				Err:  domain.NewLookupError(tt.kind, "слово", nil),
			}
			assert.Contains(t, renderToString(st), tt.want)
		})
	}
}

func TestRender_Loading(t *testing.T) {
	t.Parallel()

	st := search.State{View: search.ViewSearch, Query: "свет", Loading: true}
	assert.Contains(t, renderToString(st), "Ищем «свет»")
}

func TestRender_LoadingIgnoresStaleResult(t *testing.T) {
	t.Parallel()

	// While loading, a previous word or error is stale and must not show.
	st := search.State{
		View:    search.ViewSearch,
		Query:   "книга",
		Loading: true,
		Current: &domain.Word{
			Word:        "свет",
			Definitions: []domain.Definition{{ID: 1, Meaning: "что-то", Examples: []string{}}},
		},
	}

	out := renderToString(st)
	assert.Contains(t, out, "Ищем «книга»")
	assert.NotContains(t, out, "что-то")
}

func TestRender_FavoritesView(t *testing.T) {
	t.Parallel()

	st := search.State{
		View:      search.ViewFavorites,
		Favorites: []string{"свет", "книга"},
	}

	out := renderToString(st)
	assert.Contains(t, out, "Избранное:")
	assert.Contains(t, out, "1. свет")
	assert.Contains(t, out, "2. книга")
}

func TestRender_FavoritesViewEmpty(t *testing.T) {
	t.Parallel()

	st := search.State{View: search.ViewFavorites, Favorites: []string{}}
	assert.Contains(t, renderToString(st), "(пусто)")
}

func TestRender_Idle(t *testing.T) {
	t.Parallel()

	out := renderToString(search.State{View: search.ViewSearch})
	assert.Equal(t, "", strings.TrimSpace(out), "nothing to show on idle state")
}
