package server

import (
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// CreateGameRequest starts a game; an empty FEN means the standard position.
type CreateGameRequest struct {
	FEN string `json:"fen" validate:"max=100"`
}

// MoveRequest plays one move for the side to move.
type MoveRequest struct {
	From string `json:"from" validate:"required,square"`
	To   string `json:"to" validate:"required,square"`
}

// ValidateRequest asks whether a move is legal in a position without
// keeping any state.
type ValidateRequest struct {
	FEN         string `json:"fen" validate:"max=100"`
	From        string `json:"from" validate:"required,square"`
	To          string `json:"to" validate:"required,square"`
	EnforceTurn bool   `json:"enforceTurn"`
}

// MoveJSON is the wire form of an accepted move.
type MoveJSON struct {
	From  string `json:"from"`
	To    string `json:"to"`
	UCI   string `json:"uci"`
	Piece string `json:"piece"`
	Type  string `json:"type"`
}

// GameResponse is the wire form of a game view.
type GameResponse struct {
	ID         string    `json:"id"`
	StartFEN   string    `json:"startFen"`
	FEN        string    `json:"fen"`
	SideToMove string    `json:"sideToMove"`
	State      string    `json:"state"`
	History    []string  `json:"history"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MoveResponse reports an accepted move and the position after it.
type MoveResponse struct {
	Move  MoveJSON `json:"move"`
	State string   `json:"state"`
	FEN   string   `json:"fen"`
	Ply   int      `json:"ply"`
}

// ValidateResponse is the verdict for a ValidateRequest.
type ValidateResponse struct {
	Legal  bool      `json:"legal"`
	Move   *MoveJSON `json:"move,omitempty"`
	FEN    string    `json:"fen,omitempty"`
	State  string    `json:"state,omitempty"`
	Reason string    `json:"reason,omitempty"`
	Kind   string    `json:"kind,omitempty"`
}

// LegalMovesResponse lists the moves available in a game.
type LegalMovesResponse struct {
	Moves []MoveJSON `json:"moves"`
}

// ListResponse lists game ids.
type ListResponse struct {
	Games []string `json:"games"`
}

// Message is a websocket frame.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Websocket message types.
const (
	MessageTypeState  = "state"
	MessageTypeMove   = "move"
	MessageTypeClosed = "closed"
	MessageTypeError  = "error"
)

func moveJSON(m chess.Move) MoveJSON {
	return MoveJSON{
		From:  m.From.String(),
		To:    m.To.String(),
		UCI:   m.UCI(),
		Piece: m.Piece.String(),
		Type:  m.Type.String(),
	}
}

func movesJSON(moves []chess.Move) []MoveJSON {
	out := make([]MoveJSON, 0, len(moves))
	for _, m := range moves {
		out = append(out, moveJSON(m))
	}
	return out
}

func gameResponse(v game.View) GameResponse {
	history := make([]string, 0, len(v.History))
	for _, m := range v.History {
		history = append(history, m.UCI())
	}
	return GameResponse{
		ID:         v.ID,
		StartFEN:   v.StartFEN,
		FEN:        v.FEN,
		SideToMove: v.SideToMove.String(),
		State:      v.State.String(),
		History:    history,
		CreatedAt:  v.CreatedAt,
	}
}

func moveResponse(r game.Result) MoveResponse {
	return MoveResponse{
		Move:  moveJSON(r.Move),
		State: r.State.String(),
		FEN:   r.FEN,
		Ply:   r.Ply,
	}
}
