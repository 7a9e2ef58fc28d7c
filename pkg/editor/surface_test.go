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
	"errors"

	gott "github.com/timburks/gotv/pkg/types"
)

type renderCall struct {
	text   string
	origin gott.Point
}

// recordingSurface remembers every string rendered into it.
type recordingSurface struct {
	size  gott.Size
	calls []renderCall
	fail  int // fail on this call (1-based); zero never fails
}

var errRender = errors.New("render failed")

func newRecordingSurface(rows, cols int) *recordingSurface {
	return &recordingSurface{size: gott.Size{Rows: rows, Cols: cols}}
}

func (s *recordingSurface) Size() gott.Size {
	return s.size
}

func (s *recordingSurface) RenderString(text string, origin gott.Point) error {
	s.calls = append(s.calls, renderCall{text: text, origin: origin})
	if s.fail > 0 && len(s.calls) == s.fail {
		return errRender
	}
	return nil
}

// row returns the calls made for one screen row.
func (s *recordingSurface) row(r int) []renderCall {
	calls := make([]renderCall, 0)
	for _, call := range s.calls {
		if call.origin.Row == r {
			calls = append(calls, call)
		}
	}
	return calls
}
