package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/service/search"
)

type stubProvider struct {
	words map[string]*domain.Word
}

func (p *stubProvider) Lookup(ctx context.Context, word string) (*domain.Word, error) {
	if w, ok := p.words[word]; ok {
		return w, nil
	}
	return nil, domain.NewLookupError(domain.KindNotFound, word, nil)
}

type stubStore struct {
	words []string
}

func (s *stubStore) Load(ctx context.Context) ([]string, error) {
	if s.words == nil {
		return []string{}, nil
	}
	return s.words, nil
}

func (s *stubStore) Save(ctx context.Context, words []string) error {
	s.words = words
	return nil
}

func runScript(t *testing.T, provider *stubProvider, store *stubStore, script string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := search.NewController(context.Background(), logger, provider, store, nil)

	var out bytes.Buffer
	ui := New(strings.NewReader(script), &out, ctrl)
	require.NoError(t, ui.Run(context.Background()))

	// Run returns only after in-flight lookups finish, so every render has
	// been written by now.
	return out.String()
}

func svetWord() *domain.Word {
	return &domain.Word{
		Word: "свет",
		Definitions: []domain.Definition{
			{ID: 1, Meaning: "лучистая энергия", PartOfSpeech: "существительное", Examples: []string{}},
		},
		Synonyms: []string{},
	}
}

func knigaWord() *domain.Word {
	return &domain.Word{
		Word: "книга",
		Definitions: []domain.Definition{
			{ID: 1, Meaning: "произведение печати", PartOfSpeech: "существительное", Examples: []string{}},
		},
		Synonyms: []string{},
	}
}

func TestUI_SearchRendersResult(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{words: map[string]*domain.Word{"свет": svetWord()}}
	out := runScript(t, provider, &stubStore{}, "свет\n/quit\n")

	assert.Contains(t, out, "Ищем «свет»", "a submitted search shows progress")
	assert.Contains(t, out, "лучистая энергия")
}

func TestUI_SearchNotFound(t *testing.T) {
	t.Parallel()

	out := runScript(t, &stubProvider{}, &stubStore{}, "zzzz\n/quit\n")

	assert.Contains(t, out, "Слово не найдено")
}

func TestUI_FavToggleFeedback(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	out := runScript(t, &stubProvider{}, store, "/fav свет\n/fav свет\n/quit\n")

	assert.Contains(t, out, "добавлено в избранное")
	assert.Contains(t, out, "убрано из избранного")
	assert.Empty(t, store.words)
}

func TestUI_FavoritesListing(t *testing.T) {
	t.Parallel()

	out := runScript(t, &stubProvider{}, &stubStore{}, "/fav свет\n/fav книга\n/favs\n/quit\n")

	assert.Contains(t, out, "1. свет")
	assert.Contains(t, out, "2. книга")
}

func TestUI_OpenFavoriteSearches(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{words: map[string]*domain.Word{"свет": svetWord()}}
	store := &stubStore{words: []string{"свет"}}
	out := runScript(t, provider, store, "/open свет\n/quit\n")

	assert.Contains(t, out, "лучистая энергия")
}

func TestUI_OpenFavoriteAfterSearchRendersOpenedWord(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{words: map[string]*domain.Word{
		"свет":  svetWord(),
		"книга": knigaWord(),
	}}
	store := &stubStore{words: []string{"книга"}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := search.NewController(context.Background(), logger, provider, store, nil)

	pr, pw := io.Pipe()
	var out bytes.Buffer
	ui := New(pr, &out, ctrl)

	done := make(chan error, 1)
	go func() { done <- ui.Run(context.Background()) }()

	_, err := io.WriteString(pw, "свет\n")
	require.NoError(t, err)

	// Let the first search fully land before opening the favorite.
	require.Eventually(t, func() bool {
		st := ctrl.State()
		return st.Current != nil && st.Current.Word == "свет"
	}, 2*time.Second, 5*time.Millisecond)

	_, err = io.WriteString(pw, "/open книга\n/quit\n")
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.NoError(t, pw.Close())

	output := out.String()
	assert.Contains(t, output, "произведение печати", "the opened favorite must be rendered")
	assert.Equal(t, 1, strings.Count(output, "лучистая энергия"),
		"the previous result must not be re-rendered when a favorite is opened")
}

func TestUI_OpenUnknownFavorite(t *testing.T) {
	t.Parallel()

	out := runScript(t, &stubProvider{}, &stubStore{}, "/open свет\n/quit\n")

	assert.Contains(t, out, "нет в избранном")
}

func TestUI_Help(t *testing.T) {
	t.Parallel()

	out := runScript(t, &stubProvider{}, &stubStore{}, "/help\n/quit\n")

	assert.Contains(t, out, "/fav")
	assert.Contains(t, out, "/quit")
}

func TestUI_EOFStopsLoop(t *testing.T) {
	t.Parallel()

	out := runScript(t, &stubProvider{}, &stubStore{}, "")
	assert.Contains(t, out, "Словарь готов")
}
