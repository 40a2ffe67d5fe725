package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// upgrade lets only websocket handshakes for existing games through.
func (h *handler) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if _, err := h.mgr.Snapshot(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.Next()
}

// feed sends the game's state once, then every accepted move until the
// client disconnects or the game is deleted. Client frames are ignored.
func (s *Server) feed(conn *websocket.Conn) {
	id := conn.Params("id")
	ctx := context.Background()

	events, cancel, err := s.h.mgr.Subscribe(ctx, id)
	if err != nil {
		_ = conn.WriteJSON(Message{Type: MessageTypeError, Payload: err.Error()})
		return
	}
	defer cancel()

	if view, err := s.h.mgr.Snapshot(ctx, id); err == nil {
		if err := conn.WriteJSON(Message{Type: MessageTypeState, Payload: gameResponse(view)}); err != nil {
			return
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteJSON(Message{Type: MessageTypeClosed})
				return
			}
			if err := conn.WriteJSON(Message{Type: MessageTypeMove, Payload: moveResponse(ev.Result)}); err != nil {
				s.logger.Printf("game %s: websocket write: %v", id, err)
				return
			}
		case <-done:
			return
		}
	}
}
