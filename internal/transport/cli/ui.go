// Package cli is the terminal presentation layer. It parses user commands
// into controller actions and renders state snapshots; all business logic
// lives in the controller.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/service/search"
)

// UI runs a line-oriented loop over the search controller.
type UI struct {
	in   io.Reader
	out  io.Writer
	ctrl *search.Controller

	mu      sync.Mutex  // serializes writes to out
	pending atomic.Bool // armed by a loading snapshot, consumed by its completion
}

// New creates a UI reading commands from in and rendering to out.
func New(in io.Reader, out io.Writer, ctrl *search.Controller) *UI {
	return &UI{in: in, out: out, ctrl: ctrl}
}

// Run processes commands until EOF or context cancellation. Lookup results
// arriving asynchronously are rendered as soon as the controller applies
// them; everything else is rendered synchronously from the command loop.
//
// Snapshots arrive in mutation order, so a loading snapshot arms rendering
// and the next completed one (word or error) consumes it. Intermediate
// emissions that still carry an older result, like the query/view update of
// an opened favorite, fall through without re-rendering stale state.
func (u *UI) Run(ctx context.Context) error {
	u.ctrl.SetOnChange(func(st search.State) {
		switch {
		case st.Loading:
			u.pending.Store(true)
			u.render(st)
		case st.Current != nil || st.Err != nil:
			if u.pending.CompareAndSwap(true, false) {
				u.render(st)
			}
		}
	})
	defer u.ctrl.SetOnChange(nil)

	u.printf("Словарь готов. Введите слово или /help.\n")

	scanner := bufio.NewScanner(u.in)
	for {
		u.printf("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if u.dispatch(ctx, line) {
			break
		}
	}

	// Let an in-flight lookup finish before the process goes away.
	u.ctrl.Wait()
	return scanner.Err()
}

// dispatch applies one command. Returns true when the loop should stop.
func (u *UI) dispatch(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit", "/выход":
		return true

	case "/help", "/помощь":
		u.printHelp()

	case "/fav", "/фав":
		if arg == "" {
			u.printf("Использование: /fav <слово>\n")
			break
		}
		u.ctrl.ToggleFavorite(ctx, arg)
		if u.ctrl.State().IsFavorite(arg) {
			u.printf("«%s» добавлено в избранное.\n", arg)
		} else {
			u.printf("«%s» убрано из избранного.\n", arg)
		}

	case "/open", "/открыть":
		if arg == "" {
			u.printf("Использование: /open <слово>\n")
			break
		}
		if !u.ctrl.State().IsFavorite(arg) {
			u.printf("Слова «%s» нет в избранном.\n", arg)
			break
		}
		u.ctrl.SelectFavorite(ctx, arg)

	case "/favs", "/избранное":
		u.ctrl.SwitchView(search.ViewFavorites)
		u.render(u.ctrl.State())

	case "/search", "/поиск":
		u.ctrl.SwitchView(search.ViewSearch)

	default:
		// Anything else is a search query.
		u.ctrl.SetQuery(line)
		u.ctrl.SubmitSearch(ctx)
	}

	return false
}

func (u *UI) render(st search.State) {
	u.mu.Lock()
	defer u.mu.Unlock()
	Render(u.out, st)
}

func (u *UI) printf(format string, args ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.out, format, args...)
}

func (u *UI) printHelp() {
	u.printf(`Команды:
  <слово>        искать слово
  /fav <слово>   добавить/убрать из избранного
  /open <слово>  открыть слово из избранного
  /favs          показать избранное
  /search        вернуться к поиску
  /quit          выход
`)
}
