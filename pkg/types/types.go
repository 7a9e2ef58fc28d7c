//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package types

import "math"

// Editor modes
const (
	ModeView    = 0
	ModeCommand = 1
	ModeLisp    = 2
	ModeQuit    = 9999
)

// A Point is a (column, row) location. It is used for the point in a
// document, for render origins and for scroll offsets.
type Point struct {
	Row int
	Col int
}

// Sub subtracts q from p component-wise. Each component of p must be at
// least the corresponding component of q; release builds saturate at zero.
func (p Point) Sub(q Point) Point {
	Assert(p.Row >= q.Row && p.Col >= q.Col, "point %+v does not contain %+v", p, q)
	return Point{
		Row: SaturatingSub(p.Row, q.Row),
		Col: SaturatingSub(p.Col, q.Col),
	}
}

// Add adds q to p component-wise.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

type Size struct {
	Rows int
	Cols int
}

// SaturatingSub returns a-b, or zero if b exceeds a.
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// SaturatingMul returns a*b for counts. Products that would overflow are
// math.MaxInt, and a non-positive factor gives zero.
func SaturatingMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// Direction names a point movement.
type Direction int

// Move directions
const (
	MoveUp Direction = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveStartOfLine
	MoveEndOfLine
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveStartOfLine:
		return "start-of-line"
	case MoveEndOfLine:
		return "end-of-line"
	default:
		return "unknown"
	}
}

// A Surface is a rectangle that text can be painted into.
// Size must be queried on every render because it may change between calls.
// RenderString paints text starting at origin; text never contains line
// breaks and fits within the surface width starting at origin.Col.
type Surface interface {
	Size() Size
	RenderString(text string, origin Point) error
}

// An Editor owns a document and the view of it.
type Editor interface {
	GetCursor() Point
	GetOffset() Point
	GetFileName() string
	GetLineCount() int
	GetLineText(row int) string

	MovePoint(direction Direction, count int)
	MoveToLine(line int)
	PageUp(multiplier int)
	PageDown(multiplier int)
	HalfPageUp(multiplier int)
	HalfPageDown(multiplier int)

	Render(s Surface) error
}

type Commander interface {
	GetMode() int
	GetMessageBarText(length int) string
}
