package engine

import (
	"fmt"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenKinds = map[nchess.PieceType]chess.Kind{
	nchess.Pawn:   chess.Pawn,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Knight: chess.Knight,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

// BoardFromFEN creates an 8×8 board from a standard FEN string. Only the
// piece placement is kept. Row 0 is rank 8 and column 0 is file a, so the
// board reads the same way the FEN does.
func BoardFromFEN(fen string) (*chess.Board, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	game := nchess.NewGame(opt)

	board := chess.NewStandardBoard()
	for sq, p := range game.Position().Board().SquareMap() {
		kind, ok := fenKinds[p.Type()]
		if !ok {
			continue
		}
		colour := chess.White
		if p.Color() == nchess.Black {
			colour = chess.Black
		}
		row := chess.StandardSize - 1 - int(sq.Rank())
		col := int(sq.File())
		board.Set(row, col, chess.MakePiece(colour, kind))
	}

	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := BoardFromFEN(InitialFEN)
	return board
}
