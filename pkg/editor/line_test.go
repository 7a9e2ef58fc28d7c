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
	"testing"

	gott "github.com/timburks/gotv/pkg/types"
)

func TestLineLength(t *testing.T) {
	if n := NewLine("hello").Length(); n != 5 {
		t.Errorf("Unexpected length: %d", n)
	}
	if n := NewLine("").Length(); n != 0 {
		t.Errorf("Unexpected length of empty line: %d", n)
	}
	// characters, not bytes
	if n := NewLine("héllo, 世界").Length(); n != 9 {
		t.Errorf("Unexpected length of non-ASCII line: %d", n)
	}
}

func TestLineRenderRow(t *testing.T) {
	line := NewLine("Four score and seven")

	s := newRecordingSurface(1, 10)
	if err := line.RenderRow(s, gott.Point{}, 0); err != nil {
		t.Errorf("RenderRow failed: %+v", err)
	}
	if got := s.calls[0].text; got != "Four score" {
		t.Errorf("Unexpected text: '%s'", got)
	}

	s = newRecordingSurface(1, 10)
	line.RenderRow(s, gott.Point{}, 5)
	if got := s.calls[0].text; got != "score and " {
		t.Errorf("Unexpected text with offset: '%s'", got)
	}

	s = newRecordingSurface(1, 10)
	line.RenderRow(s, gott.Point{}, 15)
	if got := s.calls[0].text; got != "seven" {
		t.Errorf("Unexpected text at end of line: '%s'", got)
	}
}

func TestLineRenderRowPastEnd(t *testing.T) {
	line := NewLine("abc")
	s := newRecordingSurface(1, 10)
	if err := line.RenderRow(s, gott.Point{Row: 0, Col: 0}, 7); err != nil {
		t.Errorf("RenderRow failed: %+v", err)
	}
	if len(s.calls) != 1 || s.calls[0].text != "" {
		t.Errorf("Expected one empty render, got %+v", s.calls)
	}
}

func TestLineRenderRowWithOrigin(t *testing.T) {
	line := NewLine("0123456789")
	s := newRecordingSurface(3, 6)
	line.RenderRow(s, gott.Point{Row: 2, Col: 2}, 1)
	// start = origin.Col + offset = 3, end = offset + (width - origin.Col) = 5
	if got := s.calls[0]; got.text != "34" || got.origin != (gott.Point{Row: 2, Col: 2}) {
		t.Errorf("Unexpected render: %+v", got)
	}
}

func TestLineRenderRowNarrowSurface(t *testing.T) {
	line := NewLine("abc")
	s := newRecordingSurface(1, 0)
	line.RenderRow(s, gott.Point{}, 0)
	if s.calls[0].text != "" {
		t.Errorf("Expected empty render on zero-width surface, got '%s'", s.calls[0].text)
	}
}

func TestLineRenderRowError(t *testing.T) {
	s := newRecordingSurface(1, 10)
	s.fail = 1
	if err := NewLine("abc").RenderRow(s, gott.Point{}, 0); err != errRender {
		t.Errorf("Expected render error, got %+v", err)
	}
}

func TestLineWithBreakInReleaseBuild(t *testing.T) {
	if gott.Debug {
		t.Skip("line breaks panic in debug builds")
	}
	if n := NewLine("a\nb").Length(); n != 3 {
		t.Errorf("Expected line break to be kept as a character, length %d", n)
	}
}
