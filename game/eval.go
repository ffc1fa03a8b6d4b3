package game

// KingValue is large enough that losing the king outweighs any material.
const KingValue = 1_000_000

// Piece-square tables are written from White's side: the first row is rank 8.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// Evaluate returns the static score of the board in centipawns from the
// perspective of the side to move: material plus piece-square bonuses.
func Evaluate(b *Board) int {
	score := 0
	for piece := range b.Pieces() {
		value := SquareValue(piece)
		if piece.Color == b.Active() {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// SquareValue is the material plus positional worth of a piece where it stands.
func SquareValue(piece Piece) int {
	return PositionValue(piece) + PieceValue(piece.Kind)
}

// PositionValue reads the piece-square table, mirrored vertically for Black.
func PositionValue(piece Piece) int {
	var table *[64]int
	switch piece.Kind {
	case Pawn:
		table = &pawnTable
	case Knight:
		table = &knightTable
	case Bishop:
		table = &bishopTable
	case Rook:
		table = &rookTable
	case Queen:
		table = &queenTable
	case King:
		table = &kingTable
	case Duck, None:
		return 0
	}

	row := 7 - piece.Pos.Rank
	if piece.Color == Black {
		row = piece.Pos.Rank
	}
	return table[row*8+piece.Pos.File]
}

func PieceValue(kind Kind) int {
	switch kind {
	case Pawn:
		return 100
	case Knight:
		return 350
	case Bishop:
		return 350
	case Rook:
		return 550
	case Queen:
		return 1000
	case King:
		return KingValue
	default:
		return 0
	}
}
