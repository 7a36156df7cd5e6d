package board

// Zobrist hashing. The table is seeded once from a fixed constant so
// hashes are reproducible across runs, which the transposition table and
// repetition tracking (when added above this package) both rely on.

const zobristSeed uint64 = 670

// zobristPieces[kind+6*color][square], zobristSide[color],
// zobristCastling[bit], zobristEnPassant[file].
var (
	zobristPieces   [12][64]uint64
	zobristSide     [2]uint64
	zobristCastling [4]uint64
	zobristEnPassant [8]uint64
)

type zobristPRNG struct {
	state uint64
}

func (p *zobristPRNG) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &zobristPRNG{state: zobristSeed}
	for kind := 0; kind < 12; kind++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieces[kind][sq] = rng.next()
		}
	}
	zobristSide[White] = 0
	zobristSide[Black] = rng.next()
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rng.next()
	}
}

func init() {
	initZobrist()
}

// zobristIndex maps a (kind, color) pair to the row used for piece keys.
func zobristIndex(kind PieceKind, color Color) int {
	return int(kind) + 6*int(color)
}

// Hash computes the Zobrist hash of p from scratch. The engine always
// recomputes rather than maintaining an incremental hash through
// make/unmake, trading a little speed for never drifting out of sync.
func Hash(p *Position) uint64 {
	var h uint64
	for color := White; color <= Black; color++ {
		for kind := King; kind <= Pawn; kind++ {
			p.Pieces[color][kind].ForEach(func(sq Square) {
				h ^= zobristPieces[zobristIndex(kind, color)][sq]
			})
		}
	}
	h ^= zobristSide[p.SideToMove]
	for bit := 0; bit < 4; bit++ {
		if p.Castling&(1<<uint(bit)) != 0 {
			h ^= zobristCastling[bit]
		}
	}
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	return h
}
