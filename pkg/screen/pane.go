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
	gott "github.com/timburks/gotv/pkg/types"
)

// A Pane is a rectangular part of another Surface.
// Its size is recomputed from the parent on every call, so it shrinks
// with the parent when the terminal is resized.
type Pane struct {
	parent gott.Surface
	origin gott.Point
	size   gott.Size
}

func NewPane(parent gott.Surface, origin gott.Point, size gott.Size) *Pane {
	return &Pane{parent: parent, origin: origin, size: size}
}

func (p *Pane) Size() gott.Size {
	parentSize := p.parent.Size()
	return gott.Size{
		Rows: max(0, min(p.size.Rows, parentSize.Rows-p.origin.Row)),
		Cols: max(0, min(p.size.Cols, parentSize.Cols-p.origin.Col)),
	}
}

// RenderString paints text at origin, relative to the pane.
// Text that would leave the pane is cut off.
func (p *Pane) RenderString(text string, origin gott.Point) error {
	size := p.Size()
	if origin.Row >= size.Rows || origin.Col > size.Cols {
		gott.Assert(false, "origin %+v outside pane of size %+v", origin, size)
		return nil
	}
	runes := []rune(text)
	if room := size.Cols - origin.Col; len(runes) > room {
		gott.Assert(false, "text %q does not fit at %+v in pane of size %+v", text, origin, size)
		text = string(runes[0:room])
	}
	return p.parent.RenderString(text, p.origin.Add(origin))
}
