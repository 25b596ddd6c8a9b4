// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell tag
func cellSymbol(tag world.CellType) rune {
	switch tag {
	case world.Floor:
		return '.'
	case world.KeySlot:
		return 'K'
	case world.LockedDoor:
		return 'D'
	case world.UnlockedDoor:
		return 'd'
	default:
		return '#'
	}
}

// WriteMapGrid writes the board to w with the player drawn as '@'
func WriteMapGrid(w io.Writer, g *state.Game) {
	size := g.Grid.Size()
	for y := 0; y < size; y++ {
		line := make([]rune, 0, size)
		for x := 0; x < size; x++ {
			if g.Player.X == x && g.Player.Y == y {
				line = append(line, '@')
				continue
			}
			line = append(line, cellSymbol(g.CellAt(world.Pos(x, y))))
		}
		fmt.Fprintln(w, string(line))
	}
}

// DumpLevel writes a sectioned level report to w.
// The format is sections of key: value lines so it is easy to diff.
func DumpLevel(w io.Writer, g *state.Game, generator string, seed int64) {
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "generator: %s\n", generator)
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "board_size: %d\n", g.Grid.Size())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows downward)\n")
	fmt.Fprintf(w, "player: %v\n", g.Player.Position)
	fmt.Fprintf(w, "key: %v\n", g.Key.Position)
	fmt.Fprintf(w, "door: %v locked: %v\n", g.Door.Position, g.Door.Locked)
	fmt.Fprintf(w, "floor_cells: %d\n", world.WalkableCount(g.Grid))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = floor  K = key  D = locked door  d = unlocked door  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	WriteMapGrid(w, g)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms (in chain order) ---")
	for i, r := range g.Rooms {
		fmt.Fprintf(w, "  %d: x: %d y: %d w: %d h: %d center: %v\n", i, r.X, r.Y, r.W, r.H, r.Center())
	}
}

// DumpLevelToFile writes DumpLevel output to map.txt and returns its absolute path
func DumpLevelToFile(g *state.Game, generator string, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpLevel(f, g, generator, seed)
	return absPath, nil
}
