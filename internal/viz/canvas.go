package viz

import (
	"math"
	"strings"
)

// Braille cells pack a 2x4 dot grid per character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// starting at Unicode 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel buffer. Width and Height count terminal cells;
// the drawable area is (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// cell locates the grid cell and dot bit addressed by sub-pixel (x, y).
// ok is false outside the drawable area.
func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, rune(pixelMap[y%4][x%2]), true
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

// Unset clears the sub-pixel at (x, y).
func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for _, row := range c.Grid {
		for j := range row {
			row[j] = 0x2800
		}
	}
}

// DrawLine draws a line between two sub-pixel points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle traces a circle outline of sub-pixel radius r centered at
// (x, y). Sampling density scales with the radius so large rings stay
// closed.
func (c *Canvas) DrawCircle(x, y, r int) {
	if r <= 0 {
		c.Set(x, y)
		return
	}
	steps := 4 * r
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		px := x + int(math.Round(float64(r)*math.Cos(a)))
		py := y + int(math.Round(float64(r)*math.Sin(a)))
		c.Set(px, py)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1)) // braille runes are 3 bytes in UTF-8
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
