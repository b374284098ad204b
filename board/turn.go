package board

import "github.com/brannoch/wyvern/square"

// Action classifies how a Turn is applied to the board.
type Action uint8

const (
	ActionMove Action = iota
	ActionCastle
	ActionPromotionQueen
	ActionPromotionBishop
	ActionPromotionRook
	ActionPromotionKnight
	ActionPass
	ActionForfeit
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionCastle:
		return "castle"
	case ActionPromotionQueen:
		return "promotion(queen)"
	case ActionPromotionBishop:
		return "promotion(bishop)"
	case ActionPromotionRook:
		return "promotion(rook)"
	case ActionPromotionKnight:
		return "promotion(knight)"
	case ActionPass:
		return "pass"
	case ActionForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// PromotionType reports the piece type a promotion action resolves to.
func (a Action) PromotionType() (square.PieceType, bool) {
	switch a {
	case ActionPromotionQueen:
		return square.Queen, true
	case ActionPromotionBishop:
		return square.Bishop, true
	case ActionPromotionRook:
		return square.Rook, true
	case ActionPromotionKnight:
		return square.Knight, true
	default:
		return square.NoType, false
	}
}

var promotionAction = map[square.PieceType]Action{
	square.Queen:  ActionPromotionQueen,
	square.Bishop: ActionPromotionBishop,
	square.Rook:   ActionPromotionRook,
	square.Knight: ActionPromotionKnight,
}

// Turn is a single tagged move record: the piece moving, its origin and
// destination squares, and the action that disambiguates castling and
// promotion from a plain move.
type Turn struct {
	Piece  square.Piece
	From   square.Square
	To     square.Square
	Action Action
}

func (t Turn) String() string {
	if t.Action == ActionCastle {
		if t.To.File() == square.FileG {
			return "O-O"
		}
		return "O-O-O"
	}
	s := t.From.String() + t.To.String()
	if pt, ok := t.Action.PromotionType(); ok {
		s += string(pt.FENLetter())
	}
	return s
}

// UCI returns the long-algebraic representation used by external move
// notation: origin, destination, and lowercase promotion letter.
func (t Turn) UCI() string {
	s := t.From.String() + t.To.String()
	if pt, ok := t.Action.PromotionType(); ok {
		b := pt.FENLetter()
		s += string(b | 0x20)
	}
	return s
}
