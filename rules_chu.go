package main

func init() {
	registerVariant(chuBasicTable())
	registerVariant(chuTable())
}

// chuBasicTable is the original Chu Shogi piece page: no leap colouring,
// and two-step pieces show their second step as a capture.
func chuBasicTable() *Table {
	b := build("chu-basic", "sq", Caster{DoubleStep: CaptureStep})
	chuPieces(b, Capture, "red")
	b.piece(4, 3, "White Horse", nil, Vertical(slider, Move), ForwardDiagonal(slider, Move))
	return b.mustBuild()
}

// chuTable adds castling, pawns and the shogi knight, and colours leaps.
func chuTable() *Table {
	b := build("chu", "sq", Caster{Escalate: true, DoubleStep: ShootStep})

	castling := lines("The King and Rook swing around each other")
	for _, x := range []int{8, 9} {
		for _, m := range allModifiers {
			k := int(m)
			b.rule(x, 9, mods(m), &Rule{Title: "Castling", Caption: castling, Directives: []Directive{
				Place(-1-k, 0, BlackKing),
				Place(0, 0, Clear),
				Place(-2-k, 0, BlackRook),
				Place(5-k-x, 0, Clear),
			}})
		}
	}
	for _, x := range []int{0, 1} {
		for _, m := range allModifiers {
			k := int(m)
			b.rule(x, 9, mods(m), &Rule{Title: "Castling", Caption: castling, Directives: []Directive{
				Place(2-k, 0, BlackKing),
				Place(0, 0, Clear),
				Place(3-k, 0, BlackRook),
				Place(5-k-x, 0, Clear),
			}})
		}
	}
	for _, x := range []int{4, 5} {
		for _, m := range allModifiers {
			k := int(m)
			b.rule(x, 9, mods(m), &Rule{Title: "Castling", Caption: lines("Click on Rook to see how"), Directives: []Directive{
				Place(2+k, 0, NonCaptureOnly),
				Place(-2-k, 0, NonCaptureOnly),
			}})
		}
	}

	b.piece(2, 1, "Pawn", lines(
		"Different capture (red) and non-capture (green)",
		"Initial double-push non-capture can be blocked",
		"The black Pawn can e.p. capture to the skipped square",
	), ForwardDiagonal(1, CaptureOnly), Forward(2, NonCaptureOnly))
	b.piece(7, 2, "Pawn", lines("Different capture (red) and non-capture (green)"),
		ForwardDiagonal(1, CaptureOnly), Forward(1, NonCaptureOnly))

	chuPieces(b, Move, "orange")
	b.piece(3, 2, "(Shogi) Knight", nil, Leaps(1, Move, Vector{1, 2}, Vector{-1, 2}))
	b.when(4, 3, mods(1), "Knight", nil, KnightLeaps(1, Move))
	b.when(4, 3, mods(0, 2, 3), "White Horse", nil, Vertical(slider, Move), ForwardDiagonal(slider, Move))
	b.piece(6, 7, "Soldier", nil, Diagonal(1, Move), Orthogonal(1, Move))
	return b.mustBuild()
}

// chuPieces registers the pieces both Chu pages share. lionLeap is the
// marker of the Lion's knight jumps and landing names its colour.
func chuPieces(b *tableBuilder, lionLeap Marker, landing string) {
	b.piece(2, 5, "Vertical Mover", nil, Vertical(slider, Move), Sideways(1, Move))
	b.piece(2, 4, "Side Mover", nil, Sideways(slider, Move), Vertical(1, Move))
	b.piece(2, 3, "Cobra (aka Go Between)", nil, Vertical(1, Move))
	b.piece(3, 7, "Gold General", nil, Orthogonal(1, Move), ForwardDiagonal(1, Move))
	b.piece(3, 6, "Ferocious Leopard", nil, Diagonal(1, Move), Vertical(1, Move))
	b.piece(3, 5, "Narrow Queen (aka Flying Ox)", nil, Diagonal(slider, Move), Vertical(slider, Move))
	b.piece(3, 4, "Sleeping Queen (aka Free Boar)", nil, Diagonal(slider, Move), Sideways(slider, Move))
	b.piece(3, 3, "Kylin", nil, Diagonal(1, Move), Leaps(1, Move, dabbabaVectors...))
	b.piece(4, 7, "Silver General", nil, Diagonal(1, Move), Forward(1, Move))
	b.piece(4, 6, "Whale", nil, Vertical(slider, Move), BackwardDiagonal(slider, Move))
	b.piece(4, 5, "Soaring Eagle", lines(
		"Can shoot or capture en-passant what is on the cyan",
		"square with the first of its two steps along the forward",
		"diagonal, or jump directly to cyan or "+landing+" squares",
	), Orthogonal(slider, Move), BackwardDiagonal(slider, Move), ForwardDiagonal(2, Move))
	b.piece(4, 4, "Lion", lines(
		"Can shoot or capture en-passant what is on the",
		"cyan squares with the first of its two King steps,",
		"or jump directly to any of the colored squares",
	), Diagonal(2, Move), Orthogonal(2, Move), KnightLeaps(1, lionLeap))
	b.piece(4, 2, "Lance", nil, Forward(slider, Move))
	b.piece(5, 7, "Copper General", nil, ForwardDiagonal(1, Move), Vertical(1, Move))
	b.piece(5, 6, "Canon (aka Reverse Chariot)", nil, Vertical(slider, Move))
	b.piece(5, 5, "Unicorn (aka Horned Falcon)", lines(
		"Can shoot or capture en-passant what is on the cyan",
		"square with the first of its two forward/backward",
		"steps, or jump directly to cyan or "+landing+" square",
	), Diagonal(slider, Move), Sideways(slider, Move), Backward(slider, Move), Forward(2, Move))
	b.piece(5, 4, "Queen", nil, Diagonal(slider, Move), Orthogonal(slider, Move))
	b.piece(5, 3, "Flying Stag", nil, Vertical(slider, Move), Sideways(1, Move), Diagonal(1, Move))
	b.piece(5, 2, "Blind Tiger", nil, Diagonal(1, Move), Sideways(1, Move), Backward(1, Move))
	b.piece(6, 6, "King", nil, Diagonal(1, Move), Orthogonal(1, Move))
	b.piece(6, 5, "Dragon King", nil, Orthogonal(slider, Move), Diagonal(1, Move))
	b.piece(6, 4, "Dragon Horse", nil, Diagonal(slider, Move), Orthogonal(1, Move))
	b.piece(6, 3, "Phoenix", nil, Orthogonal(1, Move), Leaps(1, Move, alfilVectors...))
	b.piece(6, 2, "Pawn", nil, Forward(1, Move))
	b.piece(7, 6, "Elephant", nil, Diagonal(1, Move), Sideways(1, Move), Forward(1, Move))
	b.piece(7, 5, "Rook", nil, Orthogonal(slider, Move))
	b.piece(7, 4, "Bishop", nil, Diagonal(slider, Move))
}
