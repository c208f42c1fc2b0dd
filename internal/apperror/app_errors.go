package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrNotParticipant = errors.New("player is not a participant of the game")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell is out of range")

	ErrAlreadyQueued = errors.New("player is already waiting for an opponent")
	ErrAlreadyInGame = errors.New("player is already in a game")
	ErrSelfMatch     = errors.New("player can't be paired with itself")

	ErrNotConnected = errors.New("player is not connected")

	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)
