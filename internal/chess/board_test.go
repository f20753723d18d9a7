package chess

import (
	"testing"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", p.MoveNumber)
		}
		if _, ok := p.EnPassantTarget(); ok {
			t.Error("EnPassantTarget() ok = true; want false")
		}
		if p.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", p.HalfmoveClock)
		}
		if p.CastleRights != NoCastleRights {
			t.Errorf("CastleRights = %v; want none", p.CastleRights)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := p.PieceAt(sq); got != Empty {
				t.Errorf("PieceAt(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestPieceAtOffBoard(t *testing.T) {
	p := NewPosition()
	p.Set(NoSquare, MakePiece(White, Queen))
	p.Set(64, MakePiece(White, Queen))

	if got := p.PieceAt(NoSquare); got != Empty {
		t.Errorf("PieceAt(NoSquare) = %v; want Empty", got)
	}
	if got := p.PieceAt(64); got != Empty {
		t.Errorf("PieceAt(64) = %v; want Empty", got)
	}
}

func TestFindKing(t *testing.T) {
	p := NewPosition()
	p.Set(E1, MakePiece(White, King))
	p.Set(NewSquare(3, 5), MakePiece(Black, King))

	if got := p.FindKing(White); got != E1 {
		t.Errorf("FindKing(White) = %v; want e1", got)
	}
	if got := p.FindKing(Black); got.Name() != "d6" {
		t.Errorf("FindKing(Black) = %v; want d6", got)
	}
}

func TestFindKingPanicsWithoutKing(t *testing.T) {
	p := NewPosition()
	p.Set(E1, MakePiece(White, King))

	if p.HasKing(Black) {
		t.Fatal("HasKing(Black) = true; want false")
	}

	defer func() {
		if recover() == nil {
			t.Error("FindKing(Black) did not panic")
		}
	}()
	p.FindKing(Black)
}

func TestCopyIsIndependent(t *testing.T) {
	p := NewPosition()
	p.Set(E1, MakePiece(White, King))
	p.CastleRights = AllCastleRights

	c := p.Copy()
	if *c != *p {
		t.Fatal("Copy() differs from the original")
	}

	c.Set(E1, Empty)
	c.CastleRights.Revoke(WhiteKingSide)
	c.ToMove = Black

	if p.PieceAt(E1) != MakePiece(White, King) {
		t.Error("modifying the copy changed the original squares")
	}
	if p.CastleRights != AllCastleRights {
		t.Error("modifying the copy changed the original castle rights")
	}
	if p.ToMove != White {
		t.Error("modifying the copy changed the original side to move")
	}
}

func TestPositionString(t *testing.T) {
	p := NewPosition()
	p.Set(E1, MakePiece(White, King))
	p.Set(E8, MakePiece(Black, King))
	p.Set(NewSquare(0, 6), MakePiece(Black, Pawn))

	want := ". . . . k . . .\n" +
		"p . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . . . . .\n" +
		". . . . K . . .\n"
	if got := p.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
