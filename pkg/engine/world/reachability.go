package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every walkable position connected to start through N/E/S/W steps.
// An unwalkable or out-of-bounds start yields an empty set.
func Reachable(g *Grid, start Position) mapset.Set[Position] {
	visited := mapset.New[Position]()

	tag, err := g.GetAt(start)
	if err != nil || !tag.IsWalkable() {
		return visited
	}

	queue := []Position{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Add(dir.Delta())
			if visited.Has(next) {
				continue
			}
			tag, err := g.GetAt(next)
			if err != nil || !tag.IsWalkable() {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited
}

// WalkableCount returns the number of walkable cells on the grid
func WalkableCount(g *Grid) int {
	n := 0
	g.ForEachCell(func(x, y int, tag CellType) {
		if tag.IsWalkable() {
			n++
		}
	})
	return n
}
