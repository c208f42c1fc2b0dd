package usecase

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// pendingGame - a seat held while the game row is being created.
const pendingGame int64 = 0

type session struct {
	// mu serializes moves and broadcasts of one game.
	mu   sync.Mutex
	game *entity.Game
}

// sessionStore - in-progress games by id, and the game each player is seated in.
// It is not safe for concurrent use; GameManager guards it with its own lock.
type sessionStore struct {
	sessions map[int64]*session
	seats    map[int64]int64
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*session),
		seats:    make(map[int64]int64),
	}
}

func (that *sessionStore) isSeated(playerID int64) bool {
	_, ok := that.seats[playerID]
	return ok
}

func (that *sessionStore) reserve(playerIDs ...int64) {
	for _, id := range playerIDs {
		that.seats[id] = pendingGame
	}
}

func (that *sessionStore) release(playerIDs ...int64) {
	for _, id := range playerIDs {
		if that.seats[id] == pendingGame {
			delete(that.seats, id)
		}
	}
}

func (that *sessionStore) put(sess *session) {
	game := sess.game

	that.sessions[game.ID] = sess
	that.seats[game.Player1] = game.ID
	that.seats[game.Player2] = game.ID
}

func (that *sessionStore) get(gameID int64) (*session, bool) {
	sess, ok := that.sessions[gameID]
	return sess, ok
}

// remove - forgets the game and frees the seats still pointing at it.
func (that *sessionStore) remove(game *entity.Game) {
	delete(that.sessions, game.ID)

	for _, id := range []int64{game.Player1, game.Player2} {
		if seat, ok := that.seats[id]; ok && seat == game.ID {
			delete(that.seats, id)
		}
	}
}

func (that *sessionStore) all() []*session {
	sessions := make([]*session, 0, len(that.sessions))
	for _, sess := range that.sessions {
		sessions = append(sessions, sess)
	}

	return sessions
}

func (that *sessionStore) count() int {
	return len(that.sessions)
}
