// Package search implements the search-and-favorites controller: the state
// machine coordinating the asynchronous remote lookup, error
// classification, and the persisted favorites list.
package search

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
	"github.com/pr-poehali-dev/word-definition-bot-1/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lookupProvider interface {
	Lookup(ctx context.Context, word string) (*domain.Word, error)
}

type favoritesStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, words []string) error
}

type wordCache interface {
	Get(word string) (*domain.Word, bool)
	Set(word string, w *domain.Word)
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

// Controller owns the search state machine and the favorites list.
//
// All mutations go through a single mutex, so actions apply atomically and
// in order. Each submitted search carries a generation number; a lookup result
// whose generation is no longer the latest is discarded on arrival, so a
// stale response can never overwrite the state of a newer search.
type Controller struct {
	log      *slog.Logger
	provider lookupProvider
	store    favoritesStore
	cache    wordCache // optional, may be nil

	mu         sync.Mutex
	state      State
	generation uint64

	onChange func(State)
	inflight sync.WaitGroup
}

// NewController creates the controller and loads the persisted favorites.
// A store that cannot be read is logged and treated as empty; startup never
// fails because of stale favorites data.
func NewController(ctx context.Context, logger *slog.Logger, provider lookupProvider, store favoritesStore, cache wordCache) *Controller {
	c := &Controller{
		log:      logger.With("service", "search"),
		provider: provider,
		store:    store,
		cache:    cache,
		state: State{
			View:      ViewSearch,
			Favorites: []string{},
		},
	}

	favorites, err := store.Load(ctx)
	if err != nil {
		c.log.ErrorContext(ctx, "load favorites failed, starting empty", slog.String("error", err.Error()))
	} else {
		c.state.Favorites = favorites
	}

	return c
}

// SetOnChange registers a callback invoked with a state snapshot after every
// state mutation. Snapshots are delivered in mutation order: the callback
// runs while the internal lock is held, so an observer sees a search's
// loading snapshot strictly before its completion snapshot. The callback
// must not call back into the controller.
func (c *Controller) SetOnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Wait blocks until all in-flight lookups have completed or been discarded.
// Used for graceful shutdown and in tests.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// SetQuery updates the current query text.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	c.state.Query = text
	c.notifyLocked()
	c.mu.Unlock()
}

// SwitchView changes the active view.
func (c *Controller) SwitchView(view View) {
	c.mu.Lock()
	c.state.View = view
	c.notifyLocked()
	c.mu.Unlock()
}

// SubmitSearch starts a lookup for the current query. A blank or
// whitespace-only query is a no-op: no request is issued and loading is
// untouched. A newer SubmitSearch supersedes any in-flight one — the older
// result is discarded when it arrives.
func (c *Controller) SubmitSearch(ctx context.Context) {
	c.mu.Lock()
	word := strings.TrimSpace(c.state.Query)
	if word == "" {
		c.mu.Unlock()
		return
	}

	c.generation++
	gen := c.generation
	c.state.Loading = true
	c.state.Err = nil
	c.notifyLocked()
	c.mu.Unlock()

	if c.cache != nil {
		if cached, ok := c.cache.Get(word); ok {
			c.log.DebugContext(ctx, "lookup served from cache", slog.String("word", word))
			c.applyResult(gen, word, cached, nil)
			return
		}
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		rctx := ctxutil.WithRequestID(ctx, ctxutil.NewRequestID())
		result, err := c.provider.Lookup(rctx, word)
		if err == nil && c.cache != nil {
			c.cache.Set(word, result)
		}
		c.applyResult(gen, word, result, err)
	}()
}

// ToggleFavorite flips the presence of a word in the favorites list and
// persists the whole list before returning. Insertion order of the
// remaining members is preserved.
func (c *Controller) ToggleFavorite(ctx context.Context, word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}

	c.mu.Lock()
	if idx := slices.Index(c.state.Favorites, word); idx >= 0 {
		c.state.Favorites = slices.Delete(c.state.Favorites, idx, idx+1)
	} else {
		c.state.Favorites = append(c.state.Favorites, word)
	}

	// Persist while holding the lock so saves hit the store in mutation
	// order. A failed save keeps the in-memory list usable for the session.
	if err := c.store.Save(ctx, c.state.Favorites); err != nil {
		c.log.ErrorContext(ctx, "persist favorites failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
	c.notifyLocked()
	c.mu.Unlock()
}

// SelectFavorite jumps from the favorites list back to search: it fills the
// query with the chosen word, switches the view, and submits the search —
// exactly as if the user had typed and submitted the word. A word not in
// favorites is ignored.
func (c *Controller) SelectFavorite(ctx context.Context, word string) {
	c.mu.Lock()
	if !slices.Contains(c.state.Favorites, word) {
		c.mu.Unlock()
		return
	}
	c.state.Query = word
	c.state.View = ViewSearch
	c.notifyLocked()
	c.mu.Unlock()

	c.SubmitSearch(ctx)
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

// applyResult folds a completed lookup into the state, unless a newer
// search has been submitted since — then the result is dropped.
func (c *Controller) applyResult(gen uint64, word string, result *domain.Word, err error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.log.Debug("stale lookup result discarded",
			slog.String("word", word),
			slog.Uint64("generation", gen),
		)
		return
	}

	c.state.Loading = false
	if err != nil {
		var lerr *domain.LookupError
		if !errors.As(err, &lerr) {
			// The provider contract promises a LookupError; anything else is
			// folded into the server kind so the view always has a known one.
			lerr = domain.NewLookupError(domain.KindServer, word, err)
		}
		c.state.Err = lerr
		c.state.Current = nil
	} else {
		c.state.Current = result
		c.state.Err = nil
	}
	c.notifyLocked()
	c.mu.Unlock()
}

// snapshotLocked copies the state for handing out. Callers must hold mu.
func (c *Controller) snapshotLocked() State {
	snap := c.state
	snap.Favorites = slices.Clone(c.state.Favorites)
	return snap
}

// notifyLocked hands a snapshot to the onChange callback. Callers must hold
// mu; keeping the lock across the call is what guarantees delivery order.
func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}
