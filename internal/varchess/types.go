package varchess

type Color int8

const (
	White Color = 0
	Black Color = 1
)

// Next returns the other color.
func (c Color) Next() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type Kind int8

const (
	KindNone Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// PawnStatus tracks the double-step window of a pawn.
type PawnStatus int8

const (
	CanLeap PawnStatus = iota
	JustLeaped
	CannotLeap
)

// Piece is a kind plus the pawn-only state. Orientation and Status are zero
// for every other kind.
type Piece struct {
	Kind        Kind
	Orientation Pos
	Status      PawnStatus
}

func NewPiece(k Kind) Piece {
	return Piece{Kind: k}
}

func NewPawn(orientation Pos, status PawnStatus) Piece {
	return Piece{Kind: Pawn, Orientation: orientation, Status: status}
}

// Square is the occupant slot of a cell; the zero value is empty.
type Square struct {
	Color Color
	Piece Piece
}

func (s Square) Empty() bool { return s.Piece.Kind == KindNone }

func Occupant(c Color, p Piece) Square {
	return Square{Color: c, Piece: p}
}

type ActionType int8

const (
	ActionGo ActionType = iota
	ActionTake
	ActionPromotion
)

// Action is one atomic effect of a move: Go relocates the mover, Take clears a
// cell, Promotion re-kinds the mover where it stands.
type Action struct {
	Type ActionType
	Pos  Pos
	Kind Kind
}

func Go(p Pos) Action { return Action{Type: ActionGo, Pos: p} }
func Take(p Pos) Action { return Action{Type: ActionTake, Pos: p} }
func Promotion(k Kind) Action { return Action{Type: ActionPromotion, Kind: k} }

// Move is one candidate: the origin of the mover and the ordered actions.
type Move struct {
	Origin  Pos
	Actions []Action
}

// Candidate groups every action sequence available from one origin.
type Candidate struct {
	Origin    Pos
	Sequences [][]Action
}
