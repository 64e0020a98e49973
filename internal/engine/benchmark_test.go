package engine

import (
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

var benchLayouts = map[string]string{
	"Empty8":   "8/8/8/8/8/8/8/8",
	"Initial":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Empty16":  "16/16/16/16/16/16/16/16/16/16/16/16/16/16/16/16",
	"Sparse12": "q11/12/12/12/12/5N6/12/12/12/12/12/11K",
}

func BenchmarkMoveAvailable(b *testing.B) {
	for name, layout := range benchLayouts {
		board, err := ParseLayout(layout)
		if err != nil {
			b.Fatalf("ParseLayout(%q): %v", layout, err)
		}
		last := board.Size() - 1
		for _, kind := range []chess.Kind{chess.Knight, chess.Rook, chess.Bishop, chess.Queen} {
			b.Run(name+"/"+kind.String(), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					MoveAvailable(board, kind, chess.Pt(0, 0), chess.Pt(last, last))
				}
			})
		}
	}
}

func BenchmarkReachableSquares(b *testing.B) {
	for name, layout := range benchLayouts {
		board, err := ParseLayout(layout)
		if err != nil {
			b.Fatalf("ParseLayout(%q): %v", layout, err)
		}
		mid := board.Size() / 2
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ReachableSquares(board, chess.Queen, chess.Pt(mid, mid))
			}
		})
	}
}

func BenchmarkParseLayout(b *testing.B) {
	for name, layout := range benchLayouts {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ParseLayout(layout)
			}
		})
	}
}
