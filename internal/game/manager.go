package game

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/movelist"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// subscriberBuffer is the number of events a slow subscriber may fall
// behind before events are dropped for it.
const subscriberBuffer = 16

// Manager owns the live games.
type Manager struct {
	mu      sync.RWMutex
	games   map[string]*Game
	subs    map[string]map[int]chan Event
	nextSub int
	store   storage.Store
	logger  *log.Logger
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore persists games to s and restores them from it on lookup.
func WithStore(s storage.Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithLogger sets the logger for storage problems.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		games:  make(map[string]*Game),
		subs:   make(map[string]map[int]chan Event),
		logger: log.Default(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a game from fen, or from the standard position when fen
// is empty.
func (m *Manager) Create(ctx context.Context, fen string) (View, error) {
	var board *chess.Board
	if fen == "" {
		board = engine.NewInitialBoard()
		fen = engine.InitialFEN
	} else {
		b, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			return View{}, err
		}
		board = b
	}

	g := newGame(uuid.NewString(), fen, board, m.now())
	if m.store != nil {
		rec := storage.GameRecord{ID: g.ID, StartFEN: fen, CreatedAt: g.CreatedAt}
		if err := m.store.CreateGame(ctx, rec); err != nil {
			return View{}, fmt.Errorf("store game: %w", err)
		}
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g.view(), nil
}

// get returns a live game, restoring it from storage on a miss.
func (m *Manager) get(ctx context.Context, id string) (*Game, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return g, nil
	}
	if m.store == nil {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}

	rec, err := m.store.LoadGame(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err = restore(rec)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.games[id]; ok {
		return existing, nil
	}
	m.games[id] = g
	return g, nil
}

// restore rebuilds a game by replaying its stored moves.
func restore(rec storage.GameRecord) (*Game, error) {
	fen := rec.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", rec.ID, err)
	}
	for i, text := range rec.Moves {
		from, to, err := movelist.DecodeMove(text)
		if err == nil {
			_, err = engine.Play(board, from, to)
		}
		if err != nil {
			return nil, &errors.GameError{Err: err, Game: rec.ID, PlyNum: i + 1, MoveText: text}
		}
	}
	return newGame(rec.ID, fen, board, rec.CreatedAt), nil
}

// Play validates from -> to for the side to move and applies it. A
// rejected move leaves the game unchanged and returns the engine's
// *errors.MoveError.
func (m *Manager) Play(ctx context.Context, id string, from, to chess.Coordinate) (Result, error) {
	g, err := m.get(ctx, id)
	if err != nil {
		return Result{}, err
	}

	// Storing and publishing under the game lock keeps plies in order.
	g.mu.Lock()
	defer g.mu.Unlock()
	res, err := g.playLocked(from, to)
	if err != nil {
		return Result{}, err
	}

	if m.store != nil {
		if err := m.store.AppendMove(ctx, id, res.Ply, res.Move.UCI()); err != nil {
			m.logger.Printf("game %s: failed to store ply %d: %v", id, res.Ply, err)
		}
	}
	m.publish(Event{GameID: id, Result: res})
	return res, nil
}

// Snapshot returns a copy of the game's state.
func (m *Manager) Snapshot(ctx context.Context, id string) (View, error) {
	g, err := m.get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return g.view(), nil
}

// Board returns a clone of the game's board.
func (m *Manager) Board(ctx context.Context, id string) (*chess.Board, error) {
	g, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.snapshot(), nil
}

// LegalMoves lists the moves available to the side to move, limited to
// one origin square when from is non-nil.
func (m *Manager) LegalMoves(ctx context.Context, id string, from *chess.Coordinate) ([]chess.Move, error) {
	board, err := m.Board(ctx, id)
	if err != nil {
		return nil, err
	}
	if from != nil {
		return engine.LegalMovesFrom(board, *from), nil
	}
	return engine.LegalMoves(board, board.SideToMove()), nil
}

// Delete drops a game from memory and storage and closes its feeds.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, live := m.games[id]
	delete(m.games, id)
	for _, ch := range m.subs[id] {
		close(ch)
	}
	delete(m.subs, id)
	m.mu.Unlock()

	if m.store != nil {
		err := m.store.DeleteGame(ctx, id)
		if err == nil || (live && stderrors.Is(err, errors.ErrGameNotFound)) {
			return nil
		}
		return err
	}
	if !live {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return nil
}

// List returns the ids of live and stored games, sorted.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	m.mu.RLock()
	for id := range m.games {
		seen[id] = true
	}
	m.mu.RUnlock()

	if m.store != nil {
		stored, err := m.store.ListGames(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range stored {
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Subscribe returns a feed of the game's moves and a function that ends
// the subscription. The feed is closed when the game is deleted.
func (m *Manager) Subscribe(ctx context.Context, id string) (<-chan Event, func(), error) {
	if _, err := m.get(ctx, id); err != nil {
		return nil, nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Event, subscriberBuffer)
	key := m.nextSub
	m.nextSub++
	if m.subs[id] == nil {
		m.subs[id] = make(map[int]chan Event)
	}
	m.subs[id][key] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if c, ok := m.subs[id][key]; ok {
			delete(m.subs[id], key)
			close(c)
		}
	}
	return ch, cancel, nil
}

// publish delivers ev without blocking; full feeds miss the event.
func (m *Manager) publish(ev Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subs[ev.GameID] {
		select {
		case ch <- ev:
		default:
			m.logger.Printf("game %s: subscriber too slow, dropped ply %d", ev.GameID, ev.Result.Ply)
		}
	}
}
