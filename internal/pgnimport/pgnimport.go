// Package pgnimport converts PGN games into move scripts.
package pgnimport

import (
	stderrors "errors"
	"fmt"
	"io"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/movelist"
)

// Import reads every game in r. Games that cannot be expressed as a script
// are skipped; their errors are joined into the returned error, which is
// a *errors.GameError per game. A read error stops the import.
func Import(r io.Reader, file string) ([]movelist.Script, error) {
	scanner := notnil.NewScanner(r)

	var scripts []movelist.Script
	var errs []error
	gameNum := 0
	for scanner.Scan() {
		game := scanner.Next()
		if game == nil {
			continue
		}
		gameNum++
		script, err := Convert(game)
		if err != nil {
			var gerr *errors.GameError
			if stderrors.As(err, &gerr) {
				gerr.GameNum = gameNum
				gerr.File = file
			}
			errs = append(errs, err)
			continue
		}
		scripts = append(scripts, script)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		errs = append(errs, fmt.Errorf("%s: %w", file, err))
	}
	return scripts, stderrors.Join(errs...)
}

// Convert turns one parsed game into a script of coordinate moves.
func Convert(game *notnil.Game) (movelist.Script, error) {
	script := movelist.Script{
		Name: gameName(game),
		FEN:  tagValue(game, "FEN"),
	}
	for i, m := range game.Moves() {
		if m.Promo() != notnil.NoPieceType {
			return movelist.Script{}, &errors.GameError{
				Err:      errors.ErrPromotionUnsupported,
				Game:     script.Name,
				PlyNum:   i + 1,
				MoveText: m.String(),
			}
		}
		from, to := square(m.S1()), square(m.S2())
		script.Moves = append(script.Moves, movelist.MoveText{
			From: from,
			To:   to,
			Text: movelist.EncodeMove(from, to),
		})
	}
	return script, nil
}

func square(s notnil.Square) chess.Coordinate {
	return chess.Sq(int(s.File()), int(s.Rank()))
}

// gameName builds "White - Black" from the seven tag roster, or returns
// the Event tag when players are unknown.
func gameName(game *notnil.Game) string {
	white, black := tagValue(game, "White"), tagValue(game, "Black")
	if white != "" || black != "" {
		return fmt.Sprintf("%s - %s", orUnknown(white), orUnknown(black))
	}
	return tagValue(game, "Event")
}

func tagValue(game *notnil.Game, key string) string {
	tp := game.GetTagPair(key)
	if tp == nil || tp.Value == "?" {
		return ""
	}
	return tp.Value
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
