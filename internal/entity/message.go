package entity

const (
	MessageGameStart = "GAME_START"
	MessageGameMove  = "GAME_MOVE"
	MessageGameEnd   = "GAME_END"
	MessageError     = "ERROR"
)

type PlayerInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type GameStartMessage struct {
	Type    string     `json:"type"`
	GameID  int64      `json:"game_id"`
	Player1 PlayerInfo `json:"player1"`
	Player2 PlayerInfo `json:"player2"`
	Turn    int64      `json:"turn"`
}

type GameMoveMessage struct {
	Type     string `json:"type"`
	GameID   int64  `json:"game_id"`
	PlayerID int64  `json:"player_id"`
	Turn     int64  `json:"turn"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// GameEndMessage - WinnerID is null on a draw.
type GameEndMessage struct {
	Type     string `json:"type"`
	GameID   int64  `json:"game_id"`
	WinnerID *int64 `json:"winner_id"`
}

type ErrorMessage struct {
	Type   string `json:"type"`
	GameID int64  `json:"game_id,omitempty"`
	Reason string `json:"reason"`
}

// MoveRequest - the only inbound message a client may send.
type MoveRequest struct {
	Type   string `json:"type"`
	GameID int64  `json:"game_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
