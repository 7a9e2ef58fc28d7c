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

package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	gott "github.com/timburks/gotv/pkg/types"
)

// The bottom two rows hold the info bar and the message bar.
const barRows = 2

// The Screen draws the state of an Editor on the terminal.
// A Screen is also the Surface for the whole terminal.
type Screen struct {
	size gott.Size // screen size
}

// NewScreen takes over the terminal. Close gives it back.
func NewScreen() (*Screen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Size asks the terminal for its current size.
func (s *Screen) Size() gott.Size {
	cols, rows := termbox.Size()
	return gott.Size{Rows: rows, Cols: cols}
}

// RenderString clears the row from origin to the right edge and paints text there.
func (s *Screen) RenderString(text string, origin gott.Point) error {
	return s.renderString(text, origin, termbox.ColorDefault, termbox.ColorDefault)
}

func (s *Screen) renderString(text string, origin gott.Point, fg, bg termbox.Attribute) error {
	width, height := termbox.Size()
	if origin.Row < 0 || origin.Row >= height {
		return fmt.Errorf("row %d is offscreen", origin.Row)
	}
	for x := origin.Col; x < width; x++ {
		termbox.SetCell(x, origin.Row, ' ', fg, bg)
	}
	x := origin.Col
	for _, ch := range text {
		if x >= width {
			break
		}
		if ch < ' ' {
			ch = ' '
		}
		termbox.SetCell(x, origin.Row, ch, fg, bg)
		x += cellWidth(ch)
	}
	return nil
}

// cellWidth is the number of terminal cells a rune takes when painted.
// Control characters are painted as a single space.
func cellWidth(ch rune) int {
	if ch < ' ' {
		return 1
	}
	return max(runewidth.RuneWidth(ch), 1)
}

// cursorCell converts the point to a cell in the document pane.
// Columns count characters, but wide characters take two cells.
func cursorCell(e gott.Editor) gott.Point {
	cursor := e.GetCursor()
	offset := e.GetOffset()
	cell := cursor.Sub(offset)
	text := []rune(e.GetLineText(cursor.Row))
	start := min(offset.Col, len(text))
	end := min(cursor.Col, len(text))
	cell.Col = gott.SaturatingSub(cursor.Col, end)
	for _, ch := range text[start:max(start, end)] {
		cell.Col += cellWidth(ch)
	}
	return cell
}

// Render draws the editor, the info bar and the message bar, and places the cursor.
func (s *Screen) Render(e gott.Editor, c gott.Commander) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	s.size = s.Size()

	pane := NewPane(s, gott.Point{}, gott.Size{
		Rows: gott.SaturatingSub(s.size.Rows, barRows),
		Cols: s.size.Cols,
	})
	if err := e.Render(pane); err != nil {
		return err
	}
	if s.size.Rows >= barRows {
		infoText := infoBarText(e, s.size.Cols)
		if err := s.renderString(infoText, gott.Point{Row: s.size.Rows - 2}, termbox.ColorBlack, termbox.ColorWhite); err != nil {
			return err
		}
		messageText := c.GetMessageBarText(s.size.Cols)
		if err := s.RenderString(messageText, gott.Point{Row: s.size.Rows - 1}); err != nil {
			return err
		}
	}
	if c.GetMode() != gott.ModeView {
		// the cursor follows the text being typed
		termbox.SetCursor(runewidth.StringWidth(c.GetMessageBarText(s.size.Cols)), s.size.Rows-1)
	} else if size := pane.Size(); size.Rows > 0 && size.Cols > 0 {
		cursor := cursorCell(e)
		termbox.SetCursor(cursor.Col, cursor.Row)
	} else {
		termbox.HideCursor()
	}
	return termbox.Flush()
}

// infoBarText puts the file name on the left and the cursor row on the right.
func infoBarText(e gott.Editor, length int) string {
	finalText := fmt.Sprintf(" %d/%d ", e.GetCursor().Row+1, e.GetLineCount())
	name := e.GetFileName()
	if name == "" {
		name = "[no file]"
	}
	text := " " + name
	for len(text) < length-len(finalText) {
		text = text + " "
	}
	text += finalText
	if runes := []rune(text); len(runes) > length {
		text = string(runes[0:max(length, 0)])
	}
	return text
}

// GetNextEvent blocks until the user does something.
func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	case termbox.EventResize:
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventError:
		return &gott.Event{Type: gott.EventError, Err: event.Err}
	default:
		return &gott.Event{Type: gott.EventResize}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlD:
		return gott.KeyCtrlD
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	default:
		return gott.KeyUnsupported
	}
}
