package server

import (
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

type handler struct {
	mgr     *game.Manager
	started time.Time
}

// health reports liveness.
func (h *handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Unix(),
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *handler) createGame(c *fiber.Ctx) error {
	req := body[CreateGameRequest](c)
	view, err := h.mgr.Create(c.UserContext(), req.FEN)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(gameResponse(view))
}

func (h *handler) listGames(c *fiber.Ctx) error {
	ids, err := h.mgr.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ListResponse{Games: ids})
}

func (h *handler) getGame(c *fiber.Ctx) error {
	view, err := h.mgr.Snapshot(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(gameResponse(view))
}

func (h *handler) deleteGame(c *fiber.Ctx) error {
	if err := h.mgr.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// legalMoves lists the side to move's moves, or only those from the
// square in the "from" query parameter.
func (h *handler) legalMoves(c *fiber.Ctx) error {
	var from *chess.Coordinate
	if q := c.Query("from"); q != "" {
		sq, err := chess.ParseSquare(q)
		if err != nil {
			return writeError(c, err)
		}
		from = &sq
	}

	moves, err := h.mgr.LegalMoves(c.UserContext(), c.Params("id"), from)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(LegalMovesResponse{Moves: movesJSON(moves)})
}

func (h *handler) playMove(c *fiber.Ctx) error {
	req := body[MoveRequest](c)
	from, to, err := squares(req.From, req.To)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.mgr.Play(c.UserContext(), c.Params("id"), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(moveResponse(res))
}

// validateMove judges a move against a FEN position without creating a game.
// Rejections are reported in the body with status 200.
func (h *handler) validateMove(c *fiber.Ctx) error {
	req := body[ValidateRequest](c)
	board := engine.NewInitialBoard()
	if req.FEN != "" {
		b, err := engine.NewBoardFromFEN(req.FEN)
		if err != nil {
			return writeError(c, err)
		}
		board = b
	}

	from, to, err := squares(req.From, req.To)
	if err != nil {
		return writeError(c, err)
	}

	move, err := engine.ValidateMove(board, from, to, req.EnforceTurn)
	if err != nil {
		var me *errors.MoveError
		if !stderrors.As(err, &me) {
			return err
		}
		r := rejection(me)
		return c.JSON(ValidateResponse{Reason: r.Reason, Kind: r.Kind})
	}

	engine.ApplyMove(board, move)
	mj := moveJSON(move)
	return c.JSON(ValidateResponse{
		Legal: true,
		Move:  &mj,
		FEN:   engine.BoardToFEN(board),
		State: engine.Status(board).String(),
	})
}

func squares(from, to string) (chess.Coordinate, chess.Coordinate, error) {
	f, err := chess.ParseSquare(from)
	if err != nil {
		return chess.Coordinate{}, chess.Coordinate{}, err
	}
	t, err := chess.ParseSquare(to)
	if err != nil {
		return chess.Coordinate{}, chess.Coordinate{}, err
	}
	return f, t, nil
}
