// The floorplan package parses ASCII floor plans into wall runs and
// walkable waypoints:
//
//	'-'  horizontal wall cell
//	'|'  vertical wall cell
//	'+'  both (wall corner/junction)
//	'.'  waypoint (walkable)
//
// Adjacent wall cells of the same orientation merge into runs so a long
// wall renders as one quad instead of one per cell.
package floorplan

import (
	_ "embed"
	"fmt"
)

//go:embed floor-plan.txt
var DefaultPlan []byte

// Cell is a grid coordinate, x growing right and y growing down.
type Cell struct {
	X int
	Y int
}

// Wall is an inclusive run of wall cells sharing one orientation.
// Horizontal runs vary in X, vertical runs in Y.
type Wall struct {
	Min        Cell
	Max        Cell
	Horizontal bool
}

type Plan struct {
	Width  int
	Height int

	Walls     []Wall
	Waypoints []Cell
}

// Parse reads a floor plan. All rows must have the same length and every
// byte must be one of the four cell kinds.
func Parse(data []byte) (Plan, error) {

	var horizontals, verticals []Cell
	plan := Plan{}

	x, y := 0, 0
	width := -1

	flushRow := func() error {

		if x == 0 && width == -1 {
			return fmt.Errorf("floor plan starts with an empty row")
		}

		if width == -1 {
			width = x
		} else if x != width {
			return fmt.Errorf("floor plan row %d has length %d, want %d", y, x, width)
		}

		x = 0
		y++
		return nil
	}

	for i := 0; i < len(data); i++ {

		switch data[i] {

		case '\n':
			if err := flushRow(); err != nil {
				return Plan{}, err
			}

		case '+':
			horizontals = append(horizontals, Cell{X: x, Y: y})
			verticals = append(verticals, Cell{X: x, Y: y})
			x++

		case '-':
			horizontals = append(horizontals, Cell{X: x, Y: y})
			x++

		case '|':
			verticals = append(verticals, Cell{X: x, Y: y})
			x++

		case '.':
			plan.Waypoints = append(plan.Waypoints, Cell{X: x, Y: y})
			x++

		default:
			return Plan{}, fmt.Errorf("unexpected byte '%c' at row %d col %d", data[i], y, x)
		}
	}

	// Accept a missing trailing newline.
	if x != 0 {
		if err := flushRow(); err != nil {
			return Plan{}, err
		}
	}

	if y == 0 || width <= 0 {
		return Plan{}, fmt.Errorf("floor plan is empty")
	}

	plan.Width = width
	plan.Height = y
	plan.Walls = mergeWalls(horizontals, verticals, width)

	return plan, nil
}

// mergeWalls folds adjacent wall cells into runs. Horizontal cells arrive
// in row-major scan order; verticals get regrouped column-major so runs
// along y are contiguous.
func mergeWalls(horizontals, verticals []Cell, width int) []Wall {

	walls := make([]Wall, 0, len(horizontals)+len(verticals))

	for _, c := range horizontals {

		n := len(walls) - 1
		if n >= 0 && walls[n].Horizontal && walls[n].Min.Y == c.Y && walls[n].Max.X == c.X-1 {
			walls[n].Max.X = c.X
			continue
		}

		walls = append(walls, Wall{Min: c, Max: c, Horizontal: true})
	}

	vertByColumn := make(map[int][]Cell, width)
	for _, c := range verticals {
		vertByColumn[c.X] = append(vertByColumn[c.X], c)
	}

	for col := 0; col < width; col++ {

		for _, c := range vertByColumn[col] {

			n := len(walls) - 1
			if n >= 0 && !walls[n].Horizontal && walls[n].Min.X == c.X && walls[n].Max.Y == c.Y-1 {
				walls[n].Max.Y = c.Y
				continue
			}

			walls = append(walls, Wall{Min: c, Max: c, Horizontal: false})
		}
	}

	return walls
}

// WaypointEdges returns the directed adjacency of waypoints: an edge for
// every pair of waypoints in each other's 8-neighborhood. Indices refer to
// Plan.Waypoints order.
func (p *Plan) WaypointEdges() [][2]int {

	index := make(map[Cell]int, len(p.Waypoints))
	for i, c := range p.Waypoints {
		index[c] = i
	}

	var edges [][2]int
	for i, c := range p.Waypoints {

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {

				if dx == 0 && dy == 0 {
					continue
				}

				j, ok := index[Cell{X: c.X + dx, Y: c.Y + dy}]
				if !ok {
					continue
				}

				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges
}
