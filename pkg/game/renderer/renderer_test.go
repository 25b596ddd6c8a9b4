package renderer

import (
	"testing"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/state"
)

func TestCamera(t *testing.T) {
	tests := []struct {
		name  string
		focus world.Position
		size  int
		want  Viewport
	}{
		{"centred", world.Pos(30, 30), 9, Viewport{X: 26, Y: 26, Size: 9}},
		{"top left corner", world.Pos(1, 2), 9, Viewport{X: 0, Y: 0, Size: 9}},
		{"bottom right corner", world.Pos(59, 60), 9, Viewport{X: 52, Y: 52, Size: 9}},
		{"exactly at half", world.Pos(4, 56), 9, Viewport{X: 0, Y: 52, Size: 9}},
		{"wider than board", world.Pos(10, 10), 99, Viewport{X: 0, Y: 0, Size: 61}},
		{"offboard focus", world.Offboard, 5, Viewport{X: 0, Y: 0, Size: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Camera(tt.focus, tt.size, 61); got != tt.want {
				t.Errorf("Camera(%v, %d, 61) = %+v, want %+v", tt.focus, tt.size, got, tt.want)
			}
		})
	}
}

func TestCamera_AlwaysContainsFocus(t *testing.T) {
	for _, size := range []int{5, 9, 15, 25, 45} {
		for x := 0; x < 61; x++ {
			p := world.Pos(x, 60-x)
			v := Camera(p, size, 61)
			if !v.Contains(p.X, p.Y) {
				t.Fatalf("Camera(%v, %d) = %+v does not contain focus", p, size, v)
			}
			if v.X < 0 || v.Y < 0 || v.X+v.Size > 61 || v.Y+v.Size > 61 {
				t.Fatalf("Camera(%v, %d) = %+v leaves the board", p, size, v)
			}
		}
	}
}

func TestViewport_EachAndToScreen(t *testing.T) {
	v := Viewport{X: 3, Y: 4, Size: 3}
	n := 0
	v.Each(func(x, y int) {
		col, row := v.ToScreen(x, y)
		if col < 0 || col >= 3 || row < 0 || row >= 3 {
			t.Errorf("ToScreen(%d, %d) = (%d, %d) outside window", x, y, col, row)
		}
		n++
	})
	if n != 9 {
		t.Errorf("Each visited %d cells, want 9", n)
	}
}

func TestZoom(t *testing.T) {
	z := NewZoom([]int{5, 9, 15, 25, 45}, 1)
	if z.Size() != 9 {
		t.Fatalf("Size() = %d, want 9", z.Size())
	}
	if !z.In() || z.Size() != 5 {
		t.Errorf("In() -> %d, want 5", z.Size())
	}
	if z.In() {
		t.Error("In() at smallest size reported a change")
	}
	for z.Out() {
	}
	if z.Size() != 45 || z.Index() != 4 {
		t.Errorf("after zooming out fully: size %d index %d", z.Size(), z.Index())
	}
}

func TestNewZoom_ClampsIndex(t *testing.T) {
	if z := NewZoom([]int{5, 9}, 7); z.Index() != 1 {
		t.Errorf("Index() = %d, want 1", z.Index())
	}
	if z := NewZoom([]int{5, 9}, -2); z.Index() != 0 {
		t.Errorf("Index() = %d, want 0", z.Index())
	}
	if z := NewZoom(nil, 0); z.Size() != 1 {
		t.Errorf("empty Zoom Size() = %d, want 1", z.Size())
	}
}

func TestTileWidth(t *testing.T) {
	if got := TileWidth(900, 9); got != 100 {
		t.Errorf("TileWidth(900, 9) = %d, want 100", got)
	}
	if got := TileWidth(900, 45); got != 20 {
		t.Errorf("TileWidth(900, 45) = %d, want 20", got)
	}
}

func TestBuildHUD_Objective(t *testing.T) {
	if err := i18n.Load("en"); err != nil {
		t.Fatal(err)
	}
	g, err := state.NewGame(5)
	if err != nil {
		t.Fatal(err)
	}

	h := BuildHUD(g)
	if h.Objective != "Find the key" || h.Swatch != ColorKey {
		t.Errorf("locked HUD = %q %v", h.Objective, h.Swatch)
	}
	if h.Level != "Level 1" {
		t.Errorf("Level = %q, want %q", h.Level, "Level 1")
	}

	g.Door.Locked = false
	h = BuildHUD(g)
	if h.Objective != "Find the Way Out" || h.Swatch != ColorDoorUnlocked {
		t.Errorf("unlocked HUD = %q %v", h.Objective, h.Swatch)
	}
}

func TestStyleFor(t *testing.T) {
	for _, tag := range world.AllCellTypes() {
		if tag == world.Wall {
			continue
		}
		if ColorFor(StyleFor(tag)) == ColorWall {
			t.Errorf("%v drawn in wall colour", tag)
		}
	}
}
