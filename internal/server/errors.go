package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidContent = "INVALID_CONTENT_TYPE"
	CodeGameNotFound   = "GAME_NOT_FOUND"
	CodeIllegalMove    = "ILLEGAL_MOVE"
	CodeInternal       = "INTERNAL_ERROR"
)

// Rejection kinds carried in MoveRejection.Kind.
const (
	KindIllegal = "illegal"
	KindCheck   = "check"
)

// ErrorResponse is the body of every non-2xx response except move rejections.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// MoveRejection is the 422 body for a move the rules do not allow.
type MoveRejection struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
	Kind   string `json:"kind"`
}

func rejection(me *errors.MoveError) MoveRejection {
	kind := KindIllegal
	if me.IsSelfCheck() {
		kind = KindCheck
	}
	return MoveRejection{Error: me.Error(), Reason: me.Reason, Kind: kind}
}

// writeError maps domain errors onto status codes.
func writeError(c *fiber.Ctx, err error) error {
	var me *errors.MoveError
	switch {
	case stderrors.As(err, &me):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(rejection(me))
	case stderrors.Is(err, errors.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  CodeGameNotFound,
		})
	case stderrors.Is(err, errors.ErrInvalidFEN), stderrors.Is(err, errors.ErrInvalidSquare):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request",
			Code:    CodeInvalidRequest,
			Details: err.Error(),
		})
	}
	return err
}

// customErrorHandler renders errors that escape the handlers.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := ErrorResponse{
		Error: "internal server error",
		Code:  CodeInternal,
	}

	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		code = fe.Code
		response.Error = fe.Message

		switch code {
		case fiber.StatusNotFound:
			response.Code = CodeGameNotFound
		case fiber.StatusBadRequest, fiber.StatusUpgradeRequired, fiber.StatusMethodNotAllowed:
			response.Code = CodeInvalidRequest
		}
	}

	return c.Status(code).JSON(response)
}
