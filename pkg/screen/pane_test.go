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
	"testing"

	gott "github.com/timburks/gotv/pkg/types"
)

type renderCall struct {
	text   string
	origin gott.Point
}

type recordingSurface struct {
	size  gott.Size
	calls []renderCall
}

func (s *recordingSurface) Size() gott.Size {
	return s.size
}

func (s *recordingSurface) RenderString(text string, origin gott.Point) error {
	s.calls = append(s.calls, renderCall{text: text, origin: origin})
	return nil
}

func TestPaneSize(t *testing.T) {
	parent := &recordingSurface{size: gott.Size{Rows: 24, Cols: 80}}
	pane := NewPane(parent, gott.Point{}, gott.Size{Rows: 22, Cols: 80})
	if size := pane.Size(); size != (gott.Size{Rows: 22, Cols: 80}) {
		t.Errorf("Unexpected size: %+v", size)
	}
	// the parent shrank
	parent.size = gott.Size{Rows: 10, Cols: 40}
	if size := pane.Size(); size != (gott.Size{Rows: 10, Cols: 40}) {
		t.Errorf("Unexpected size after resize: %+v", size)
	}
	offset := NewPane(parent, gott.Point{Row: 12, Col: 50}, gott.Size{Rows: 5, Cols: 5})
	if size := offset.Size(); size != (gott.Size{}) {
		t.Errorf("Pane outside its parent should be empty: %+v", size)
	}
}

func TestPaneRenderString(t *testing.T) {
	parent := &recordingSurface{size: gott.Size{Rows: 24, Cols: 80}}
	pane := NewPane(parent, gott.Point{Row: 2, Col: 10}, gott.Size{Rows: 5, Cols: 8})
	if err := pane.RenderString("hello", gott.Point{Row: 1, Col: 2}); err != nil {
		t.Errorf("RenderString failed: %+v", err)
	}
	if call := parent.calls[0]; call.text != "hello" || call.origin != (gott.Point{Row: 3, Col: 12}) {
		t.Errorf("Unexpected call: %+v", call)
	}
}

func TestPaneClipsInReleaseBuild(t *testing.T) {
	if gott.Debug {
		t.Skip("overflowing a pane panics in debug builds")
	}
	parent := &recordingSurface{size: gott.Size{Rows: 24, Cols: 80}}
	pane := NewPane(parent, gott.Point{}, gott.Size{Rows: 2, Cols: 4})
	pane.RenderString("overflow", gott.Point{Row: 0, Col: 1})
	pane.RenderString("below", gott.Point{Row: 2, Col: 0})
	if len(parent.calls) != 1 || parent.calls[0].text != "ove" {
		t.Errorf("Unexpected calls: %+v", parent.calls)
	}
}
