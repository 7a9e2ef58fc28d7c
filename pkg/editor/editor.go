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
	"fmt"

	gott "github.com/timburks/gotv/pkg/types"
)

const (
	Name    = "gotv"
	Version = "0.1.0"
)

// The Editor holds the document being viewed and the display offset
// that keeps the point onscreen.
type Editor struct {
	document *Document
	fileName string
	offset   gott.Point // display offset
	size     gott.Size  // size of the last render
}

func NewEditor() *Editor {
	return &Editor{document: NewDocument()}
}

// ReadFile replaces the document with the contents of a file.
// If the file can't be read the editor keeps an empty document and
// the error is returned.
func (e *Editor) ReadFile(path string) error {
	e.fileName = path
	e.offset = gott.Point{}
	d, err := Load(path)
	if err != nil {
		e.document = NewDocument()
		return err
	}
	e.document = d
	return nil
}

func (e *Editor) GetDocument() *Document {
	return e.document
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) GetLineCount() int {
	return e.document.GetLineCount()
}

// GetLineText returns the text of a row, or "" past the end of the document.
func (e *Editor) GetLineText(row int) string {
	if line := e.document.GetLine(row); line != nil {
		return line.String()
	}
	return ""
}

func (e *Editor) GetCursor() gott.Point {
	return e.document.GetPoint()
}

func (e *Editor) GetOffset() gott.Point {
	return e.offset
}

func (e *Editor) MovePoint(direction gott.Direction, count int) {
	e.document.MovePoint(direction, count)
}

// MoveToLine moves to the start of a 1-based line, clamped to the document.
func (e *Editor) MoveToLine(line int) {
	row := line - 1
	if row > e.document.GetLineCount()-1 {
		row = e.document.GetLineCount() - 1
	}
	e.document.SetPoint(gott.Point{Row: max(row, 0), Col: 0})
}

// Paging moves by the height of the last render.

func (e *Editor) PageUp(multiplier int) {
	e.MovePoint(gott.MoveUp, gott.SaturatingMul(e.size.Rows, multiplier))
}

func (e *Editor) PageDown(multiplier int) {
	e.MovePoint(gott.MoveDown, gott.SaturatingMul(e.size.Rows, multiplier))
}

func (e *Editor) HalfPageUp(multiplier int) {
	e.MovePoint(gott.MoveUp, gott.SaturatingMul(max(e.size.Rows/2, 1), multiplier))
}

func (e *Editor) HalfPageDown(multiplier int) {
	e.MovePoint(gott.MoveDown, gott.SaturatingMul(max(e.size.Rows/2, 1), multiplier))
}

// Render scrolls to keep the point visible in s and then draws the document.
func (e *Editor) Render(s gott.Surface) error {
	e.size = s.Size()
	e.offset = Scroll(e.document.GetPoint(), e.size, e.offset)
	if err := e.document.RenderInto(s, e.offset); err != nil {
		return err
	}
	if e.document.IsEmpty() {
		return renderWelcomeMessage(s)
	}
	return nil
}

// The welcome message sits a third of the way down, roughly centered.
// It is skipped when it doesn't fit.
func renderWelcomeMessage(s gott.Surface) error {
	size := s.Size()
	message := []rune(fmt.Sprintf("%s viewer -- version %s", Name, Version))
	if size.Rows < 1 || size.Cols < len(message) {
		return nil
	}
	origin := gott.Point{
		Row: size.Rows / 3,
		Col: gott.SaturatingSub(gott.SaturatingSub(size.Cols, len(message))/2, 1),
	}
	return s.RenderString(string(message), origin)
}
