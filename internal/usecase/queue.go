package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

// MatchQueue - FIFO list of players waiting for an opponent.
// It is not safe for concurrent use; GameManager guards it with its own lock.
type MatchQueue struct {
	waiting []int64
	members map[int64]struct{}
}

func NewMatchQueue() *MatchQueue {
	return &MatchQueue{
		members: make(map[int64]struct{}),
	}
}

// JoinOrPair - pairs the player with the longest waiting one, or queues the player when nobody waits.
func (that *MatchQueue) JoinOrPair(playerID int64) (int64, bool, error) {
	if _, ok := that.members[playerID]; ok {
		return 0, false, fmt.Errorf("%w: player %d", apperror.ErrAlreadyQueued, playerID)
	}

	if len(that.waiting) == 0 {
		that.waiting = append(that.waiting, playerID)
		that.members[playerID] = struct{}{}

		return 0, false, nil
	}

	opponent := that.waiting[0]
	that.waiting = that.waiting[1:]
	delete(that.members, opponent)

	return opponent, true, nil
}

// Leave - removes a waiting player, reporting whether it was queued.
func (that *MatchQueue) Leave(playerID int64) bool {
	if _, ok := that.members[playerID]; !ok {
		return false
	}

	delete(that.members, playerID)

	for i, id := range that.waiting {
		if id == playerID {
			that.waiting = append(that.waiting[:i], that.waiting[i+1:]...)
			break
		}
	}

	return true
}

// Requeue - puts a player back at the head of the queue.
func (that *MatchQueue) Requeue(playerID int64) {
	if _, ok := that.members[playerID]; ok {
		return
	}

	that.waiting = append([]int64{playerID}, that.waiting...)
	that.members[playerID] = struct{}{}
}

func (that *MatchQueue) Len() int {
	return len(that.waiting)
}

func (that *MatchQueue) Waiting() []int64 {
	waiting := make([]int64, len(that.waiting))
	copy(waiting, that.waiting)

	return waiting
}
