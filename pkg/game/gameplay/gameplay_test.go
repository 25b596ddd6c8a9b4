package gameplay

import (
	"errors"
	"math/rand"
	"testing"

	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/events"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/state"
)

// makeRoomGame builds a 5x5 board whose whole interior is one room,
// with the player at (1,1), a locked door at (2,2) and the key at (3,3).
func makeRoomGame(t *testing.T) (*Engine, *events.Recorder) {
	t.Helper()
	g, err := state.NewGame(5)
	if err != nil {
		t.Fatalf("NewGame(5): %v", err)
	}
	if err := g.Grid.FillRect(1, 1, 3, 3, world.Floor); err != nil {
		t.Fatalf("FillRect: %v", err)
	}
	g.Rooms = []world.Room{world.NewRoom(1, 1, 3, 3)}
	if err := g.PlacePlayer(world.Pos(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceDoor(world.Pos(2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceKey(world.Pos(3, 3)); err != nil {
		t.Fatal(err)
	}
	rec := &events.Recorder{}
	return NewEngine(g, nil, rec), rec
}

func newSeededEngine(t *testing.T, seed int64) (*Engine, *events.Recorder) {
	t.Helper()
	g, err := state.NewGame(61)
	if err != nil {
		t.Fatalf("NewGame(61): %v", err)
	}
	rec := &events.Recorder{}
	gen := generator.NewBlocks(generator.DefaultParams(), rand.New(rand.NewSource(seed)))
	return NewEngine(g, gen, rec), rec
}

type failingGenerator struct{}

var errGenerate = errors.New("no rooms today")

func (failingGenerator) Name() string { return "failing" }

func (failingGenerator) Generate(*world.Grid) (*generator.Layout, error) {
	return nil, errGenerate
}

func TestMove_ThenInteractOnPlainFloor(t *testing.T) {
	e, _ := makeRoomGame(t)

	for i := 0; i < 2; i++ {
		if got := e.Move(1, 0); got != Moved {
			t.Fatalf("Move(1, 0) #%d = %v, want Moved", i+1, got)
		}
	}
	if want := world.Pos(3, 1); e.Game.Player.Position != want {
		t.Fatalf("player at %v, want %v", e.Game.Player.Position, want)
	}
	if got := e.Interact(); got != Nothing {
		t.Errorf("Interact() on plain floor = %v, want Nothing", got)
	}
	if !e.Game.Door.Locked {
		t.Error("door unlocked without the key")
	}
}

func TestInteract_CollectsKey(t *testing.T) {
	e, rec := makeRoomGame(t)
	e.Game.Player.Position = world.Pos(3, 3)

	if got := e.Interact(); got != KeyCollected {
		t.Fatalf("Interact() on key = %v, want KeyCollected", got)
	}
	if e.Game.Key.Position != world.Offboard {
		t.Errorf("key at %v after pickup, want Offboard", e.Game.Key.Position)
	}
	if e.Game.Door.Locked {
		t.Error("door still locked after key pickup")
	}
	if tag := e.Game.CellAt(world.Pos(3, 3)); tag != world.Floor {
		t.Errorf("old key cell = %v, want Floor", tag)
	}
	if tag := e.Game.CellAt(world.Pos(2, 2)); tag != world.UnlockedDoor {
		t.Errorf("door cell = %v, want UnlockedDoor", tag)
	}
	if last, ok := rec.Last(); !ok || last.Kind != events.KeyCollected {
		t.Errorf("last event = %v, want key_collected", last.Kind)
	}
}

func TestInteract_KeyCanOnlyBeCollectedOnce(t *testing.T) {
	e, _ := makeRoomGame(t)
	e.Game.Player.Position = world.Pos(3, 3)

	e.Interact()
	if got := e.Interact(); got != Nothing {
		t.Errorf("second Interact() on old key cell = %v, want Nothing", got)
	}
}

func TestInteract_OffBoardKeyIsNotCollected(t *testing.T) {
	e, _ := makeRoomGame(t)
	off := world.Pos(9, 9)
	e.Game.Key.Position = off
	e.Game.Player.Position = off

	if got := e.Interact(); got != Nothing {
		t.Fatalf("Interact() on off-board key = %v, want Nothing", got)
	}
	if e.Game.Key.Position != off {
		t.Errorf("key moved to %v", e.Game.Key.Position)
	}
	if !e.Game.Door.Locked {
		t.Error("door unlocked by a key that was never collected")
	}
}

func TestInteract_LockedDoor(t *testing.T) {
	e, rec := makeRoomGame(t)
	e.Game.Player.Position = world.Pos(2, 2)

	if got := e.Interact(); got != DoorLocked {
		t.Fatalf("Interact() on locked door = %v, want DoorLocked", got)
	}
	if !e.Game.Door.Locked {
		t.Error("door unlocked by DoorLocked")
	}
	if e.Game.Key.Position != world.Pos(3, 3) {
		t.Errorf("key moved to %v", e.Game.Key.Position)
	}
	if tag := e.Game.CellAt(world.Pos(2, 2)); tag != world.LockedDoor {
		t.Errorf("door cell = %v, want LockedDoor", tag)
	}
	if last, _ := rec.Last(); last.Kind != events.DoorLocked {
		t.Errorf("last event = %v, want door_locked", last.Kind)
	}
}

func TestInteract_UnlockedDoorIsIdempotent(t *testing.T) {
	e, _ := makeRoomGame(t)
	e.Game.Player.Position = world.Pos(3, 3)
	e.Interact()
	e.Game.Player.Position = world.Pos(2, 2)

	for i := 0; i < 3; i++ {
		if got := e.Interact(); got != LevelComplete {
			t.Fatalf("Interact() #%d on open door = %v, want LevelComplete", i+1, got)
		}
	}
	if e.Game.Level != 1 {
		t.Errorf("Interact() changed level to %d", e.Game.Level)
	}
}

func TestMove_OutOfBoundsAtTopEdge(t *testing.T) {
	e, rec := makeRoomGame(t)
	e.Game.Player.Position = world.Pos(2, 0)

	if got := e.Move(0, -1); got != OutOfBounds {
		t.Fatalf("Move(0, -1) at y=0 = %v, want OutOfBounds", got)
	}
	if e.Game.Player.Position != world.Pos(2, 0) {
		t.Errorf("player moved to %v", e.Game.Player.Position)
	}
	if last, _ := rec.Last(); last.Kind != events.MoveOutOfBounds {
		t.Errorf("last event = %v, want move_out_of_bounds", last.Kind)
	}
}

func TestMove_BlockedByWall(t *testing.T) {
	e, rec := makeRoomGame(t)

	if got := e.MoveDirection(world.North); got != BlockedByWall {
		t.Fatalf("MoveDirection(North) into wall = %v, want BlockedByWall", got)
	}
	if e.Game.Player.Position != world.Pos(1, 1) {
		t.Errorf("player moved to %v", e.Game.Player.Position)
	}
	if last, _ := rec.Last(); last.Kind != events.MoveBlocked {
		t.Errorf("last event = %v, want move_blocked", last.Kind)
	}
}

func TestMove_OntoDoorAndKeyCells(t *testing.T) {
	e, _ := makeRoomGame(t)

	if got := e.Move(1, 1); got != Moved {
		t.Fatalf("Move onto locked door = %v, want Moved", got)
	}
	if got := e.Move(1, 1); got != Moved {
		t.Fatalf("Move onto key = %v, want Moved", got)
	}
	if e.Game.Player.Position != e.Game.Key.Position {
		t.Errorf("player at %v, want key cell %v", e.Game.Player.Position, e.Game.Key.Position)
	}
}

func TestMove_UnplacedPlayer(t *testing.T) {
	e, _ := makeRoomGame(t)
	e.Game.Player.Position = world.Offboard

	if got := e.Move(1, 1); got != OutOfBounds {
		t.Errorf("Move from Offboard = %v, want OutOfBounds", got)
	}
	if e.Game.Player.Position != world.Offboard {
		t.Errorf("player moved to %v", e.Game.Player.Position)
	}
}

func TestNewLevel_PlacesEntities(t *testing.T) {
	e, rec := newSeededEngine(t, 7)

	if err := e.NewLevel(); err != nil {
		t.Fatalf("NewLevel(): %v", err)
	}
	g := e.Game
	if len(g.Rooms) < 3 {
		t.Fatalf("len(Rooms) = %d, want at least 3", len(g.Rooms))
	}
	if g.Player.Position != g.Rooms[0].Center() {
		t.Errorf("player at %v, want first room center %v", g.Player.Position, g.Rooms[0].Center())
	}
	if g.Key.Position != g.Rooms[len(g.Rooms)-1].Center() {
		t.Errorf("key at %v, want last room center", g.Key.Position)
	}
	if !g.Door.Locked {
		t.Error("fresh door is unlocked")
	}
	if tag := g.CellAt(g.Key.Position); tag != world.KeySlot {
		t.Errorf("key cell = %v, want KeySlot", tag)
	}
	if tag := g.CellAt(g.Door.Position); tag != world.LockedDoor {
		t.Errorf("door cell = %v, want LockedDoor", tag)
	}

	seen := world.Reachable(g.Grid, g.Player.Position)
	if !seen.Has(g.Key.Position) || !seen.Has(g.Door.Position) {
		t.Error("key or door not reachable from the player")
	}

	kinds := rec.Kinds()
	if kinds[0] != events.BoardCleared || kinds[len(kinds)-1] != events.LevelGenerated {
		t.Errorf("events = %v, want board_cleared ... level_generated", kinds)
	}
}

func TestNewLevel_GeneratorFailureLeavesBoardCleared(t *testing.T) {
	g, err := state.NewGame(11)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(g, failingGenerator{}, nil)

	err = e.NewLevel()
	if !errors.Is(err, errGenerate) {
		t.Fatalf("NewLevel() error = %v, want wrapped errGenerate", err)
	}
	if g.Player.IsPlaced() || g.Key.IsPlaced() || g.Door.IsPlaced() {
		t.Error("entities placed after failed generation")
	}
	if n := g.Grid.Count(world.Wall); n != 11*11 {
		t.Errorf("wall count = %d, want %d", n, 11*11)
	}
}

func TestClearBoard(t *testing.T) {
	e, rec := makeRoomGame(t)
	e.ClearBoard()

	if e.Game.Grid.Count(world.Wall) != 25 {
		t.Error("ClearBoard left non-wall cells")
	}
	if e.Game.Player.IsPlaced() || e.Game.Key.IsPlaced() || e.Game.Door.IsPlaced() {
		t.Error("ClearBoard left entities on the board")
	}
	if last, _ := rec.Last(); last.Kind != events.BoardCleared {
		t.Errorf("last event = %v, want board_cleared", last.Kind)
	}
}

func TestProcessIntent_FullLevel(t *testing.T) {
	e, _ := newSeededEngine(t, 42)
	if err := e.Start(); err != nil {
		t.Fatalf("Start(): %v", err)
	}

	// Teleport rather than path-find; movement itself is covered above.
	e.Game.Player.Position = e.Game.Key.Position
	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionInteract})
	if e.Game.Door.Locked {
		t.Fatal("door still locked after interacting on the key")
	}

	e.Game.Player.Position = e.Game.Door.Position
	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionInteract})
	if e.Game.Level != 2 {
		t.Errorf("Level = %d after exiting, want 2", e.Game.Level)
	}
	if !e.Game.Door.Locked || !e.Game.Key.IsPlaced() {
		t.Error("next level did not place a fresh locked door and key")
	}
	want := i18n.Getf("LEVEL_ADVANCED", 2)
	if got := e.Game.Messages[len(e.Game.Messages)-1]; got != want {
		t.Errorf("last message = %q, want %q", got, want)
	}
}

func TestProcessIntent_NewLevelKeepsLevelNumber(t *testing.T) {
	e, _ := newSeededEngine(t, 3)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionNewLevel})
	if e.Game.Level != 1 {
		t.Errorf("Level = %d after regenerate, want 1", e.Game.Level)
	}
	if !e.Game.Player.IsPlaced() {
		t.Error("player not placed after regenerate")
	}
}

func TestProcessIntent_WallFeedbackAndQuit(t *testing.T) {
	e, _ := makeRoomGame(t)

	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionMoveWest})
	if got, want := e.Game.Messages[len(e.Game.Messages)-1], i18n.Get("HIT_WALL"); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionZoomIn})
	if e.Done() {
		t.Fatal("Done() after zoom")
	}
	e.ProcessIntent(engineinput.Intent{Action: engineinput.ActionQuit})
	if !e.Done() {
		t.Error("Done() = false after quit")
	}
}

func TestRandomWalk_PreservesInvariants(t *testing.T) {
	dirs := world.AllDirections()
	for seed := int64(1); seed <= 10; seed++ {
		e, _ := newSeededEngine(t, seed)
		if err := e.NewLevel(); err != nil {
			t.Fatalf("seed %d: NewLevel(): %v", seed, err)
		}
		walk := rand.New(rand.NewSource(seed))
		for step := 0; step < 500; step++ {
			before := e.Game.Player.Position
			switch e.MoveDirection(dirs[walk.Intn(len(dirs))]) {
			case Moved:
				if e.Game.CellAt(e.Game.Player.Position) == world.Wall {
					t.Fatalf("seed %d: player walked into a wall at %v", seed, e.Game.Player.Position)
				}
			default:
				if e.Game.Player.Position != before {
					t.Fatalf("seed %d: rejected move changed position", seed)
				}
			}
		}
	}
}
