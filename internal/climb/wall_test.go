package climb

import (
	"math/rand"
	"testing"
)

func TestNewWallLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	w := NewWall(12, rng)
	if w.Len() != 12 {
		t.Errorf("NewWall(12) length = %d, expected 12", w.Len())
	}

	// Degenerate length is floored at 1
	w = NewWall(0, rng)
	if w.Len() != 1 {
		t.Errorf("NewWall(0) length = %d, expected 1", w.Len())
	}
}

func TestWallRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := NewWall(5, rng)

	before := append([]Hold(nil), w.Holds()...)
	next := Hold{Side: SideRight, Kind: KindPinch}

	w.Rotate(next)

	if w.Len() != 5 {
		t.Errorf("Rotate changed length to %d, expected 5", w.Len())
	}

	// Everything shifted toward the climber by one
	for i := 0; i < 4; i++ {
		if w.At(i) != before[i+1] {
			t.Errorf("After rotate, hold %d = %+v, expected %+v", i, w.At(i), before[i+1])
		}
	}

	// Fresh hold appended at the far end
	if w.At(4) != next {
		t.Errorf("After rotate, tail = %+v, expected %+v", w.At(4), next)
	}
}

func TestWallActiveIsHead(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := NewWall(3, rng)

	successor := w.At(1)
	w.Rotate(Hold{Side: w.Active().Side.Opposite(), Kind: KindJug})

	if w.Active() != successor {
		t.Errorf("After rotate, Active() = %+v, expected the consumed hold's successor %+v", w.Active(), successor)
	}
	if w.Active() != w.Holds()[0] {
		t.Error("Active() must always be the head")
	}
}

func TestWallDeterministicGeneration(t *testing.T) {
	w1 := NewWall(20, rand.New(rand.NewSource(99)))
	w2 := NewWall(20, rand.New(rand.NewSource(99)))

	for i := 0; i < 20; i++ {
		if w1.At(i) != w2.At(i) {
			t.Fatalf("Same seed produced different holds at %d: %+v vs %+v", i, w1.At(i), w2.At(i))
		}
	}
}

func TestRandomHoldUsesBothSides(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	var left, right int
	for i := 0; i < 200; i++ {
		h := randomHold(rng)
		if h.Side == SideLeft {
			left++
		} else {
			right++
		}
		if h.Kind < 0 || h.Kind >= kindCount {
			t.Fatalf("randomHold produced out-of-range kind %d", h.Kind)
		}
	}

	if left == 0 || right == 0 {
		t.Errorf("Expected both sides over 200 draws, got left=%d right=%d", left, right)
	}
}

func TestSideOpposite(t *testing.T) {
	if SideLeft.Opposite() != SideRight || SideRight.Opposite() != SideLeft {
		t.Error("Opposite() incorrect")
	}
}

func TestKindInfoStatic(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		info := k.Info()
		if info.Width < 1 {
			t.Errorf("Kind %s has non-positive width", k)
		}
		if info.Glyph == 0 {
			t.Errorf("Kind %s has no glyph", k)
		}
	}

	// Out-of-range kinds get a safe placeholder
	if Kind(99).Info().Glyph != '?' {
		t.Error("Out-of-range kind should render as '?'")
	}
}
