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
	"strings"

	gott "github.com/timburks/gotv/pkg/types"
)

// A Line is a single line of text. Lines never change after they are created.
type Line struct {
	text []rune
}

// NewLine creates a line from text that contains no line breaks.
// Only "\n" breaks a line; carriage returns are content.
// Release builds keep any embedded breaks as ordinary characters.
func NewLine(text string) *Line {
	gott.Assert(!strings.Contains(text, "\n"), "line contains a line break: %q", text)
	return &Line{text: []rune(text)}
}

// Length returns the number of characters in the line.
func (l *Line) Length() int {
	return len(l.text)
}

func (l *Line) String() string {
	return string(l.text)
}

// RenderRow paints the visible part of the line at origin.
// The window of characters is [origin.Col+offset, offset+width-origin.Col),
// clamped to the line; a line shorter than the offset paints an empty string.
func (l *Line) RenderRow(s gott.Surface, origin gott.Point, offset int) error {
	width := gott.SaturatingSub(s.Size().Cols, origin.Col)
	end := min(offset+width, len(l.text))
	start := origin.Col + offset
	var text string
	if start < end {
		text = string(l.text[start:end])
	}
	return s.RenderString(text, origin)
}
