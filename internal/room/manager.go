package room

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"kings-valley/internal/game"
	"kings-valley/internal/shared"
)

// Manager is the only mutator of room state. m.mu guards the connection index
// and room creation/removal; each Room's own mutex linearizes the operations on
// that room. Lock order is m.mu then Room.mu.
type Manager struct {
	mu    sync.Mutex
	store Store
	hub   Broadcaster
	rule  game.Rule
	now   func() time.Time
	conns map[string]seatRef
}

type seatRef struct {
	code string
	seat int
}

type Option func(*Manager)

// WithRule sets how move destinations are resolved. Default is game.RuleExact.
func WithRule(r game.Rule) Option {
	return func(m *Manager) { m.rule = r }
}

// WithClock overrides time.Now for room creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(s Store, hub Broadcaster, opts ...Option) *Manager {
	m := &Manager{
		store: s,
		hub:   hub,
		rule:  game.RuleExact,
		now:   time.Now,
		conns: make(map[string]seatRef),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetHub wires the broadcaster after construction; the gateway and the manager
// reference each other.
func (m *Manager) SetHub(hub Broadcaster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hub = hub
}

func (m *Manager) Rule() game.Rule { return m.rule }

type JoinResult struct {
	RoomCode string
	Seat     int
	Side     game.Side
	Snapshot Snapshot
}

type MoveResult struct {
	Board    game.Board
	Turn     game.Side
	Winner   game.Side
	LastMove game.Move
}

type LeaveResult struct {
	RoomCode    string
	Seat        int
	Side        game.Side
	RoomDeleted bool
}

type Stats struct {
	Rooms   int `json:"rooms"`
	Players int `json:"players"`
}

// Join seats connID in the room named by code, creating the room on first use.
// The joiner gets init, the other occupant gets playerJoined.
func (m *Manager) Join(code, connID string) (JoinResult, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return JoinResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, seated := m.conns[connID]
	if seated && prev.code == code {
		if r, ok := m.store.GetRoom(code); ok {
			r.mu.Lock()
			defer r.mu.Unlock()
			return m.welcome(r, connID, prev.seat), nil
		}
	}

	r, exists := m.store.GetRoom(code)
	if exists {
		r.mu.Lock()
		full := r.occupants() >= len(r.Seats)
		r.mu.Unlock()
		if full {
			return JoinResult{}, ErrRoomFull
		}
	}

	if seated {
		m.vacate(connID, prev)
	}

	if !exists {
		r = NewRoom(code, m.now())
		m.store.SaveRoom(r)
		log.Info().Str("room", code).Msg("room created")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.freeSeat()
	r.Seats[seat] = connID
	m.conns[connID] = seatRef{code: code, seat: seat}
	log.Debug().Str("room", code).Str("conn", connID).Int("seat", seat).Msg("player joined")

	res := m.welcome(r, connID, seat)
	m.emit(r.peersOf(connID), shared.EventPlayerJoined, shared.SeatPayload{
		Seat: seat,
		Side: game.SideForSeat(seat),
	})
	return res, nil
}

// welcome sends init to connID. r.mu must be held.
func (m *Manager) welcome(r *Room, connID string, seat int) JoinResult {
	snap := r.snapshot()
	m.emit([]string{connID}, shared.EventInit, shared.InitPayload{
		Seat:     seat,
		Side:     game.SideForSeat(seat),
		Board:    snap.Board,
		Turn:     snap.Turn,
		Winner:   snap.Winner,
		RoomCode: r.Code,
	})
	return JoinResult{
		RoomCode: r.Code,
		Seat:     seat,
		Side:     game.SideForSeat(seat),
		Snapshot: snap,
	}
}

// Move applies a move for the side seated at connID and broadcasts update to
// every occupant. Rejections leave the room untouched.
func (m *Manager) Move(connID string, from, to game.Position) (MoveResult, error) {
	m.mu.Lock()
	ref, ok := m.conns[connID]
	var r *Room
	if ok {
		r, ok = m.store.GetRoom(ref.code)
	}
	m.mu.Unlock()
	if !ok {
		return MoveResult{}, ErrNoActiveRoom
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// The seat may have been given up between the two locks
	if r.closed || r.Seats[ref.seat] != connID {
		return MoveResult{}, ErrNoActiveRoom
	}

	side := game.SideForSeat(ref.seat)
	if r.Winner != game.NoSide {
		return MoveResult{}, ErrGameOver
	}
	if side != r.Turn {
		return MoveResult{}, ErrNotYourTurn
	}

	dest, ok := m.rule.Resolve(r.Board, from, to, side)
	if !ok {
		return MoveResult{}, ErrIllegalMove
	}

	game.Apply(&r.Board, from, dest)
	if winner, won := game.CheckWin(r.Board, dest); won {
		r.Winner = winner
		log.Info().Str("room", r.Code).Stringer("winner", winner).Msg("king reached the valley")
	} else {
		r.Turn = r.Turn.Opponent()
	}

	res := MoveResult{
		Board:    r.Board,
		Turn:     r.Turn,
		Winner:   r.Winner,
		LastMove: game.Move{From: from, To: dest},
	}
	log.Debug().Str("room", r.Code).Stringer("side", side).Stringer("from", from).Stringer("to", dest).Msg("move applied")

	m.emit(r.connIDs(), shared.EventUpdate, shared.UpdatePayload{
		Board:    res.Board,
		Turn:     res.Turn,
		Winner:   res.Winner,
		LastMove: res.LastMove,
	})
	return res, nil
}

// Leave frees whatever seat connID holds. The room is deleted as soon as its
// last occupant leaves; otherwise the remaining occupant gets playerLeft.
// Calling Leave for an unknown connection is a no-op.
func (m *Manager) Leave(connID string) (LeaveResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ref, ok := m.conns[connID]
	if !ok {
		return LeaveResult{}, false
	}
	return m.vacate(connID, ref), true
}

// vacate requires m.mu.
func (m *Manager) vacate(connID string, ref seatRef) LeaveResult {
	delete(m.conns, connID)
	res := LeaveResult{RoomCode: ref.code, Seat: ref.seat, Side: game.SideForSeat(ref.seat)}

	r, ok := m.store.GetRoom(ref.code)
	if !ok {
		return res
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Seats[ref.seat] == connID {
		r.Seats[ref.seat] = ""
	}
	log.Debug().Str("room", r.Code).Str("conn", connID).Int("seat", ref.seat).Msg("player left")

	if r.occupants() == 0 {
		r.closed = true
		m.store.DeleteRoom(r.Code)
		res.RoomDeleted = true
		log.Info().Str("room", r.Code).Msg("room closed")
		return res
	}

	m.emit(r.connIDs(), shared.EventPlayerLeft, shared.SeatPayload{Seat: ref.seat, Side: res.Side})
	return res
}

// Sweep deletes rooms that have no occupants and were created more than
// retention before now. Occupied rooms are never touched.
func (m *Manager) Sweep(now time.Time, retention time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, r := range m.store.Rooms() {
		r.mu.Lock()
		if r.occupants() == 0 && now.Sub(r.CreatedAt) > retention {
			r.closed = true
			m.store.DeleteRoom(r.Code)
			removed++
		}
		r.mu.Unlock()
	}
	return removed
}

// Snapshot returns a copy of the room named by code.
func (m *Manager) Snapshot(code string) (Snapshot, bool) {
	code, err := NormalizeCode(code)
	if err != nil {
		return Snapshot{}, false
	}
	r, ok := m.store.GetRoom(code)
	if !ok {
		return Snapshot{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), true
}

func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Rooms: len(m.store.Rooms()), Players: len(m.conns)}
}

func (m *Manager) emit(connIDs []string, action string, data interface{}) {
	if m.hub == nil || len(connIDs) == 0 {
		return
	}
	m.hub.Broadcast(connIDs, action, data)
}
