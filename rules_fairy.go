package main

func init() {
	registerVariant(fairyTable())
}

// fairyTable is the general fairy-piece page: FIDE, Berolina and Spartan
// pawns, Xiangqi pieces, Knightmate/Janus castling and Seirawan gating.
func fairyTable() *Table {
	b := build("fairy", "", Caster{Escalate: true, DoubleStep: PlainStep})
	fairyCastling(b)

	b.piece(1, 3, "en-passant capture", lines(
		"A Pawn that just made a double-push past you",
		"is caught by its tail",
	), seq(Place(1, 0, Clear), Place(1, -1, BlackPawn), Place(0, 0, Clear)))

	pawn := "Different capture (red) and non-capture (green)"
	blocked := "Initial double-push non-capture can be blocked"
	for _, x := range []int{2, 4} {
		push := join(BackwardDiagonal(2, NonCaptureOnly), Backward(1, CaptureOnly))
		b.when(x, 8, mods(1), "Hoplit", lines(pawn, "Initial double-push non-capture can jump!"), push)
		b.when(x, 8, mods(0, 2, 3), "Berlin Pawn", lines(pawn, blocked,
			"The white Pawn can e.p. capture to the skipped square in front of it"), push)
	}
	fide := join(ForwardDiagonal(1, CaptureOnly), Forward(2, NonCaptureOnly))
	b.when(2, 1, mods(2), "Pawn", lines(pawn, blocked, "The black Pawn can e.p. capture to the skipped square"), fide)
	b.when(2, 1, mods(1), "Pawn", lines(pawn, blocked), fide)
	b.when(2, 1, mods(0, 3), "Pawn", lines(pawn), fide)
	berolina := join(BackwardDiagonal(1, NonCaptureOnly), Backward(1, CaptureOnly))
	b.when(2, 6, mods(1), "Hoplit", lines(pawn), berolina)
	b.when(2, 6, mods(0, 2, 3), "Berlin Pawn", lines(pawn), berolina)
	b.piece(2, 3, "Pawn", lines(pawn), ForwardDiagonal(1, CaptureOnly), Forward(1, NonCaptureOnly))
	b.piece(2, 5, "Pawn (across the River)", nil, Forward(1, Move), Sideways(1, Move))
	b.piece(2, 2, "Pawn", nil, Forward(1, Move))

	b.when(3, 6, mods(1), "en-passant capture", lines(
		"A Pawn that just made a double-push",
		"crossing your path is caught by its tail",
		"(Note the other white Pawn can NOT capture it!)",
	), seq(Place(0, 0, Clear), Place(-1, 0, Clear), Place(0, 1, WhitePawn)))
	b.when(3, 6, mods(2), "Modern Elephant", nil, Diagonal(2, Move))
	b.when(3, 6, mods(0, 3), "Lieutenant", lines(
		"Jumps directly to orange squares",
		"Sideway step non-capture only",
	), Diagonal(2, Move), Sideways(1, NonCaptureOnly))
	b.piece(3, 5, "Great General", nil, Orthogonal(2, Move), Diagonal(2, Move))
	b.when(3, 4, mods(0), "High Priestess", nil, KnightLeaps(1, Move), Diagonal(2, Move))
	b.when(3, 4, mods(1), "Veteran", nil, KnightLeaps(1, Move), Diagonal(1, Move), Orthogonal(1, Move))
	b.when(3, 4, mods(2, 3), "High Priestess", nil, KnightLeaps(1, Move))
	b.piece(3, 3, "Rook", nil, Orthogonal(slider, Move))

	b.piece(4, 6, "General", nil, Diagonal(1, Move), Orthogonal(slider, Move))
	b.when(4, 5, mods(2), "Advisor (aka Mandarin or Palace Guard)", lines("Cannot leave Palace"), Diagonal(1, Move))
	b.when(4, 5, mods(1), "Met (aka Ferz, General)", nil, Diagonal(1, Move))
	b.when(4, 5, mods(0, 3), "Ferz (aka General)", nil, Diagonal(1, Move))
	b.when(4, 4, mods(1), "Amazon", nil, KnightLeaps(1, Move), Orthogonal(2+slider, Move), Diagonal(slider, Move))
	for _, m := range mods(0, 2, 3) {
		b.when(4, 4, mods(m), "Minister", nil, KnightLeaps(1, Move), Orthogonal(2+int(m)*slider, Move))
	}
	b.when(4, 3, mods(2), "Horse", lines(
		"Moves can be blocked on the adjacent square",
		"marked with open circle, to which it cannot move",
	), Orthogonal(1, Blocker), lame(KnightLeaps(1, Move)))
	b.when(4, 3, mods(1), "Royal Knight", lines("Royal piece that has to be checkmated"), KnightLeaps(1, Move))
	b.when(4, 3, mods(0, 3), "Knight", nil, KnightLeaps(1, Move))

	compound := join(Diagonal(slider, Move), KnightLeaps(1, Move))
	b.rule(5, 10, allModifiers, &Rule{Title: "Hawk", From: &Square{X: 5, Y: 6}, Directives: compound})
	b.when(5, 6, mods(3), "Janus", nil, compound)
	b.when(5, 6, mods(2), "Princess", nil, compound)
	b.when(5, 6, mods(1), "Warlord", nil, compound)
	b.when(5, 6, mods(0), "Archbishop", nil, compound)
	b.when(5, 5, mods(0), "Elephant (aka Alfil)", nil, Leaps(1, Move, alfilVectors...))
	b.when(5, 5, mods(1), "Elephant", lines(
		"Can be blocked on the nearest square marked",
		"with open circle, to which it cannot move",
		"It cannot cross the River separating board halves",
	), lame(Leaps(1, Move, alfilVectors...)), Diagonal(1, Blocker))
	b.when(5, 5, mods(2, 3), "Elephant (aka Alfil)", nil, lame(Leaps(1, Move, alfilVectors...)))
	chancellor := join(Orthogonal(slider, Move), KnightLeaps(1, Move))
	b.when(5, 4, mods(3), "Empress", nil, chancellor)
	b.when(5, 4, mods(2), "Elephant", nil, chancellor)
	b.when(5, 4, mods(1), "Marshall", nil, chancellor)
	b.when(5, 4, mods(0), "Chancellor", nil, chancellor)
	b.piece(5, 3, "Queen", nil, Orthogonal(slider, Move), Diagonal(slider, Move))

	b.when(6, 6, mods(2), "War Machine", nil, Orthogonal(2, Move))
	b.when(6, 6, mods(0, 1, 3), "Captain", lines("Jumps directly to orange squares"), Orthogonal(2, Move))
	b.when(6, 5, mods(1), "King (aka General)", lines(
		"Royal piece that has to be checkmated",
		"Cannot leave Palace",
	), Orthogonal(1, Move))
	b.when(6, 5, mods(0, 2, 3), "Wazir (aka Grandvizer)", nil, Orthogonal(1, Move))
	b.piece(6, 4, "Nightrider", nil, KnightLeaps(slider, NonCaptureOnly))
	b.piece(6, 3, "Bishop", nil, Diagonal(slider, Move))
	b.piece(6, 2, "Elephant", nil, Diagonal(1, Move), Forward(1, Move))

	b.piece(7, 2, "Canon", lines(
		"Slides non-capturing to first obstacle",
		"and can capture first piece behind that",
	), Vertical(3, NonCaptureOnly), Sideways(4, NonCaptureOnly), seq(Place(0, 7, CaptureOnly), Place(-6, 0, CaptureOnly)))
	b.piece(7, 0, "Gating:", lines(
		"On the first move of a back-rank piece",
		"your Hawk or Elephant can appear from under it",
	), seq(Place(0, 0, WhiteHawk), Place(-1, 2, WhiteKnight), Place(2, 0, Clear).IgnoreMargin()))
	for _, y := range []int{3, 6} {
		king := join(Orthogonal(1, Move), Diagonal(1, Move))
		b.when(7, y, mods(2), "Soldier", nil, king)
		b.when(7, y, mods(1), "Commoner (aka Man)", nil, king)
		b.when(7, y, mods(0, 3), "King", nil, king)
	}
	return b.mustBuild()
}

// fairyCastling covers orthodox, Knightmate (royal Unicorn on the b/i
// files) and Janus castling; modifier 2 on the king side means the King
// starts one file further left.
func fairyCastling(b *tableBuilder) {
	swing := lines("King and Rook swing around each other")
	for x := 0; x < 4; x++ {
		for _, m := range mods(0, 1) {
			k := int(m)
			from, royal, kingFile := x, BlackKing, x
			if x == 3 {
				from, royal, kingFile = 1, BlackUnicorn, 1
			}
			if x == 2 {
				from, kingFile = 0, 1
			}
			b.rule(x, 9, mods(m), castle(x, from, swing,
				Place(2+k, 0, BlackRook),
				Place(1+k, 0, royal),
				Place(5-kingFile, 0, Clear),
				Place(0, 0, Clear),
			))
		}
	}
	for x := 7; x < 10; x++ {
		for _, m := range mods(0, 1, 2) {
			k, kingFile := int(m), x
			if m == 2 {
				k, kingFile = 0, x+1
			}
			from, royal := x, BlackKing
			if x == 7 {
				from, royal, kingFile = 8, BlackUnicorn, 8
			}
			b.rule(x, 9, mods(m), castle(x, from, swing,
				Place(-2-k, 0, BlackRook),
				Place(-1-k, 0, royal),
				Place(5-kingFile, 0, Clear),
				Place(0, 0, Clear),
			))
		}
	}
	for _, x := range []int{4, 5} {
		for _, m := range allModifiers {
			k, left := int(m), int(m)
			if m == 2 {
				left = 1
			}
			b.rule(x, 9, mods(m), &Rule{Title: "Castling", Caption: lines("Click on Rook to see how"), Directives: seq(
				Place(2+k, 0, NonCaptureOnly),
				Place(-2-left, 0, NonCaptureOnly),
			)})
		}
	}
}

func castle(x, from int, caption []string, dirs ...Directive) *Rule {
	r := &Rule{Title: "Castling", Caption: caption, Directives: dirs}
	if from != x {
		r.From = &Square{X: from, Y: 9}
	}
	return r
}

// lame marks every leap of dirs as blockable.
func lame(dirs []Directive) []Directive {
	out := make([]Directive, len(dirs))
	for i, d := range dirs {
		out[i] = d.Blockable()
	}
	return out
}
