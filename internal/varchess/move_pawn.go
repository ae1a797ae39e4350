package varchess

var promotionKinds = [2]Kind{Queen, Knight}

// Pawn: one step forward onto an empty cell, a leap while CanLeap, diagonal
// captures and en passant against a pawn that leaped on the previous ply.
func genPawnMoves(b *Board, from Pos, color Color, pc Piece, out *[][]Action) {
	dir := pc.Orientation
	fwd := from.Add(dir)
	if sq, ok := b.Get(fwd); ok && sq.Empty() {
		addPawnMove(b, dir, []Action{Go(fwd)}, out)
		if pc.Status == CanLeap {
			leap := from.Add(dir.Mul(2))
			if sq, ok := b.Get(leap); ok && sq.Empty() {
				addPawnMove(b, dir, []Action{Go(leap)}, out)
			}
		}
	}

	for _, n := range dir.Neighbors() {
		diag := from.Add(n)
		sq, ok := b.Get(diag)
		if !ok {
			continue
		}
		if !sq.Empty() {
			if sq.Color != color {
				addPawnMove(b, dir, []Action{Go(diag)}, out)
			}
			continue
		}
		// empty diagonal: the pawn beside us may have just leaped past it
		behind := diag.Sub(dir)
		ep, ok := b.Get(behind)
		if !ok || ep.Empty() || ep.Color == color {
			continue
		}
		if ep.Piece.Kind == Pawn && ep.Piece.Status == JustLeaped {
			addPawnMove(b, dir, []Action{Go(diag), Take(behind)}, out)
		}
	}
}

// addPawnMove expands a sequence whose Go lands on the last rank into one
// sequence per promotion kind.
func addPawnMove(b *Board, dir Pos, seq []Action, out *[][]Action) {
	dst := seq[0].Pos
	if b.InBounds(dst.Add(dir)) {
		*out = append(*out, seq)
		return
	}
	for _, k := range promotionKinds {
		promo := make([]Action, 0, len(seq)+1)
		promo = append(promo, seq...)
		*out = append(*out, append(promo, Promotion(k)))
	}
}
