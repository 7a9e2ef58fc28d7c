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

package editor

import (
	"os"
	"strings"

	gott "github.com/timburks/gotv/pkg/types"
)

// Placeholder is drawn on screen rows that are past the end of the document.
const Placeholder = "~"

// A Document is an ordered list of lines and a point.
// The point may rest one row past the last line and one column past
// the last character of its row.
type Document struct {
	lines []*Line
	point gott.Point
}

func NewDocument() *Document {
	return &Document{lines: make([]*Line, 0)}
}

// NewDocumentWithLines creates a document containing one Line per string.
func NewDocumentWithLines(lines []string) *Document {
	d := NewDocument()
	for _, line := range lines {
		d.lines = append(d.lines, NewLine(line))
	}
	return d
}

// Load reads a file into a new document.
// Read errors are returned unchanged.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewDocumentWithLines(SplitLines(b)), nil
}

// SplitLines splits text on "\n", dropping a "\r" before each break.
// Other carriage returns stay in the line.
// A final line break does not start another line.
func SplitLines(b []byte) []string {
	lines := make([]string, 0)
	s := string(b)
	for len(s) > 0 {
		var line string
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			line, s = s[0:i], s[i+1:]
		} else {
			line, s = s, ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

func (d *Document) IsEmpty() bool {
	return len(d.lines) == 0
}

func (d *Document) GetLineCount() int {
	return len(d.lines)
}

// GetLine returns the line at row, or nil past the end of the document.
func (d *Document) GetLine(row int) *Line {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

// WidthOf returns the length of the line at row; rows that don't exist have width 0.
func (d *Document) WidthOf(row int) int {
	if line := d.GetLine(row); line != nil {
		return line.Length()
	}
	return 0
}

func (d *Document) GetPoint() gott.Point {
	return d.point
}

// SetPoint moves the point to p, clamped to the document.
func (d *Document) SetPoint(p gott.Point) {
	d.point.Row = max(0, min(p.Row, len(d.lines)))
	d.point.Col = max(0, min(p.Col, d.WidthOf(d.point.Row)))
}

// MovePoint moves the point count times in a direction.
// Counts below one don't move the point, except for the line start and end
// moves, which ignore the count.
func (d *Document) MovePoint(direction gott.Direction, count int) {
	switch direction {
	case gott.MoveUp:
		d.moveUp(count)
	case gott.MoveDown:
		d.moveDown(count)
	case gott.MoveLeft:
		d.repeat(d.moveLeft, count)
	case gott.MoveRight:
		d.repeat(d.moveRight, count)
	case gott.MoveStartOfLine:
		d.moveToStartOfLine()
	case gott.MoveEndOfLine:
		d.moveToEndOfLine()
	}
}

// repeat steps up to count times, stopping early once a step goes nowhere.
func (d *Document) repeat(step func(), count int) {
	for i := 0; i < count; i++ {
		before := d.point
		step()
		if d.point == before {
			return
		}
	}
}

func (d *Document) moveUp(count int) {
	if count <= 0 {
		return
	}
	d.point.Row = gott.SaturatingSub(d.point.Row, count)
	d.snapColumn()
}

func (d *Document) moveDown(count int) {
	if count <= 0 {
		return
	}
	if count > len(d.lines)-d.point.Row {
		d.point.Row = len(d.lines)
	} else {
		d.point.Row += count
	}
	d.snapColumn()
}

// At column 0 a left move wraps to the end of the previous line.
func (d *Document) moveLeft() {
	if d.point.Col > 0 {
		d.point.Col--
	} else if d.point.Row > 0 {
		d.moveUp(1)
		d.moveToEndOfLine()
	}
}

// At the end of a line a right move wraps to the start of the next line,
// which may be the empty row after the last line.
func (d *Document) moveRight() {
	if d.point.Col < d.WidthOf(d.point.Row) {
		d.point.Col++
	} else if d.point.Row < len(d.lines) {
		d.moveDown(1)
		d.moveToStartOfLine()
	}
}

func (d *Document) moveToStartOfLine() {
	d.point.Col = 0
}

func (d *Document) moveToEndOfLine() {
	d.point.Col = d.WidthOf(d.point.Row)
}

// don't leave the point past the end of its row
func (d *Document) snapColumn() {
	if width := d.WidthOf(d.point.Row); d.point.Col > width {
		d.point.Col = width
	}
}

// RenderInto draws the rows of the document that start at offset into every
// row of s. Rows past the end of the document get a single Placeholder.
func (d *Document) RenderInto(s gott.Surface, offset gott.Point) error {
	size := s.Size()
	for i := 0; i < size.Rows; i++ {
		origin := gott.Point{Row: i, Col: 0}
		var err error
		if line := d.GetLine(offset.Row + i); line != nil {
			err = line.RenderRow(s, origin, offset.Col)
		} else {
			err = s.RenderString(Placeholder, origin)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
