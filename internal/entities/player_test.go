package entities

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDX int
		wantDY int
	}{
		{name: "none", dir: DirNone, wantDX: 0, wantDY: 0},
		{name: "up", dir: DirUp, wantDX: 0, wantDY: -1},
		{name: "down", dir: DirDown, wantDX: 0, wantDY: 1},
		{name: "left", dir: DirLeft, wantDX: -1, wantDY: 0},
		{name: "right", dir: DirRight, wantDX: 1, wantDY: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := DirDelta(tc.dir)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("DirDelta(%v) = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	pairs := [][2]Direction{{DirUp, DirDown}, {DirDown, DirUp}, {DirLeft, DirRight}, {DirRight, DirLeft}, {DirNone, DirNone}}
	for _, p := range pairs {
		if got := p[0].Reverse(); got != p[1] {
			t.Fatalf("%v.Reverse() = %v, want %v", p[0], got, p[1])
		}
	}
	if IsReverse(DirNone, DirNone) {
		t.Fatalf("none must not be the reverse of none")
	}
	if !IsReverse(DirLeft, DirRight) {
		t.Fatalf("left and right should be reverses")
	}
}

func TestPlayerRespawn(t *testing.T) {
	p := NewPlayer(1, Cell{X: 3, Y: 4}, 3)
	p.Begin(DirRight, Cell{X: 4, Y: 4}, 0.25)
	p.Advance(0.1)
	p.DesiredDir = DirRight
	p.Respawn(2)
	if p.Moving() || p.Pos != (Vec{X: 3, Y: 4}) || p.Dir != DirNone || p.DesiredDir != DirNone {
		t.Fatalf("respawn did not reset the player: %+v", p.Mover)
	}
	if p.Vulnerable() {
		t.Fatalf("player should be invulnerable right after respawn")
	}
}

func TestPlayerAreaCoversDotOnlyWhenClose(t *testing.T) {
	dot := NewPacDot(Cell{X: 5, Y: 5}, 10)
	p := NewPlayer(1, Cell{X: 4, Y: 5}, 3)
	if p.Area().Intersects(dot.Area()) {
		t.Fatalf("player on the neighbouring cell must not reach the dot")
	}
	p.Pos = Vec{X: 4.6, Y: 5}
	if !p.Area().Intersects(dot.Area()) {
		t.Fatalf("player past the middle of the gap should reach the dot")
	}
}
