package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/service/search"
)

// User-facing error texts, keyed by the lookup error taxonomy.
// The wording follows the original service's Russian messages.
func errorMessage(err *domain.LookupError) string {
	switch err.Kind {
	case domain.KindNotFound:
		return "Слово не найдено. Попробуйте другое слово."
	case domain.KindConnection:
		return "Ошибка подключения. Проверьте интернет и попробуйте снова."
	default:
		return "Ошибка сервера. Попробуйте позже."
	}
}

// Render writes a textual projection of the state. It is a pure function of
// the snapshot: no controller calls, no stored state.
func Render(w io.Writer, st search.State) {
	if st.View == search.ViewFavorites {
		renderFavorites(w, st)
		return
	}

	switch {
	case st.Loading:
		fmt.Fprintf(w, "Ищем «%s»...\n", strings.TrimSpace(st.Query))
	case st.Err != nil:
		fmt.Fprintln(w, errorMessage(st.Err))
	case st.Current != nil:
		renderWord(w, st)
	}
}

func renderFavorites(w io.Writer, st search.State) {
	fmt.Fprintln(w, "Избранное:")
	if len(st.Favorites) == 0 {
		fmt.Fprintln(w, "  (пусто)")
		return
	}
	for i, word := range st.Favorites {
		fmt.Fprintf(w, "  %d. %s\n", i+1, word)
	}
}

func renderWord(w io.Writer, st search.State) {
	word := st.Current

	marker := ""
	if st.IsFavorite(word.Word) {
		marker = " ★"
	}
	fmt.Fprintf(w, "%s%s\n", word.Word, marker)

	for i, def := range word.Definitions {
		if def.PartOfSpeech != "" {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, def.PartOfSpeech, def.Meaning)
		} else {
			fmt.Fprintf(w, "  %d. %s\n", i+1, def.Meaning)
		}
		for _, ex := range def.Examples {
			fmt.Fprintf(w, "     ◆ %s\n", ex)
		}
	}

	if len(word.Synonyms) > 0 {
		fmt.Fprintf(w, "  Синонимы: %s\n", strings.Join(word.Synonyms, ", "))
	}
}
