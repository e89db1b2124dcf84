package main

func init() {
	registerVariant(cwdaTable())
}

// cwdaTable is the Chess with Different Armies page.
func cwdaTable() *Table {
	b := build("cwda", "", Caster{Escalate: true, DoubleStep: PlainStep})

	swing := "King and corner piece swing around each other"
	b.piece(1, 9, "Castling", lines(swing),
		seq(Place(0, 0, Clear), Place(2, 0, BlackKing), Place(3, 0, BlackRook), Place(4, 0, Clear)))
	b.piece(8, 9, "Castling", lines(swing),
		seq(Place(0, 0, Clear), Place(-1, 0, BlackKing), Place(-2, 0, BlackRook), Place(-3, 0, Clear)))
	b.piece(5, 9, "Castling", lines("Click on a corner piece to see how"),
		seq(Place(2, 0, NonCaptureOnly), Place(-2, 0, NonCaptureOnly)))
	b.piece(1, 0, "Castling", lines(swing, "King goes to b1, to keep its partner on same color!"),
		seq(Place(0, 0, Clear), Place(1, 0, WhiteKing), Place(2, 0, WhiteCrownedBishop), Place(4, 0, Clear)))
	b.piece(8, 0, "Castling", lines(swing),
		seq(Place(0, 0, Clear), Place(-1, 0, WhiteKing), Place(-2, 0, WhiteCrownedBishop), Place(-3, 0, Clear)))
	b.piece(5, 0, "Castling with color-bound corner piece", lines("Click on a corner piece to see how"),
		seq(Place(2, 0, NonCaptureOnly), Place(-3, 0, NonCaptureOnly)))

	b.piece(1, 3, "en-passant capture", lines(
		"A Pawn that just made a double-push past you",
		"is caught by its tail",
	), seq(Place(1, 0, Clear), Place(1, -1, BlackPawn), Place(0, 0, Clear)))

	pawn := lines("Different capture (red) and non-capture (green)")
	b.when(2, 1, mods(2), "Pawn", lines(
		"Different capture (red) and non-capture (green)",
		"Initial double-push non-capture can be blocked",
		"The black Pawn can e.p. capture to the skipped square",
	), ForwardDiagonal(1, CaptureOnly), Forward(2, NonCaptureOnly))
	b.when(2, 1, mods(0, 1, 3), "Pawn", pawn, ForwardDiagonal(1, CaptureOnly), Forward(2, NonCaptureOnly))
	b.piece(2, 3, "Pawn", pawn, ForwardDiagonal(1, CaptureOnly), Forward(1, NonCaptureOnly))

	colorBound := lines("Color bound")
	b.piece(3, 6, "Rook", nil, Orthogonal(slider, Move))
	b.piece(3, 5, "Short Rook", lines("Slides upto 4 squares"), Orthogonal(4, Move))
	b.piece(3, 4, "Elephant", nil, Orthogonal(1, Move), Leaps(1, Move, alfilVectors...))
	b.piece(3, 3, "Horse", nil, Diagonal(1, Move), Leaps(1, Move, Vector{1, 2}, Vector{-1, 2}, Vector{1, -2}, Vector{-1, -2}))
	b.piece(4, 6, "Knight", nil, KnightLeaps(1, Move))
	b.piece(4, 5, "Half-Duck", nil, Diagonal(1, Move), Leaps(1, Move, dabbabaVectors...),
		seq(Place(3, 0, Jump), Place(-3, 0, Jump), Place(0, -3, Jump), Place(0, 3, Jump)))
	b.piece(4, 4, "Leaping Bishop", colorBound, Diagonal(slider, Move), Leaps(1, Move, dabbabaVectors...))
	b.piece(4, 3, "Unicorn", nil,
		Leaps(1, Move, Vector{1, 2}, Vector{-1, 2}, Vector{2, 1}, Vector{-2, 1}),
		Backward(1, Move), Sideways(1, Move), BackwardDiagonal(1, Move))
	b.piece(5, 6, "Queen", nil, Orthogonal(slider, Move), Diagonal(slider, Move))
	b.piece(5, 5, "Marshall", nil, Orthogonal(slider, Move), KnightLeaps(1, Move))
	b.piece(5, 4, "Archbishop", nil, Diagonal(slider, Move), KnightLeaps(1, Move))
	b.piece(5, 3, "Colonel", nil,
		Leaps(1, Move, Vector{1, 2}, Vector{-1, 2}, Vector{2, 1}, Vector{-2, 1}),
		Diagonal(1, Move), Forward(slider, Move), Sideways(slider, Move), Backward(1, Move))
	b.piece(6, 6, "Bishop", nil, Diagonal(slider, Move))
	b.piece(6, 5, "Woody", nil, Orthogonal(2, Move))
	b.piece(6, 4, "Clobberer", colorBound, Leaps(1, Move, dabbabaVectors...), Diagonal(2, Move))
	b.piece(6, 3, "Turret", nil, Backward(1, Move), BackwardDiagonal(1, Move), Forward(slider, Move), Sideways(slider, Move))
	b.piece(7, 6, "King", nil, Diagonal(1, Move), Orthogonal(1, Move))
	return b.mustBuild()
}
