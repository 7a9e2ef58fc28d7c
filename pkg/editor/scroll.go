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
	gott "github.com/timburks/gotv/pkg/types"
)

// Scroll returns the display offset that keeps point inside a window of
// the given size. The offset only moves as far as it has to.
// Running it again with the same point and size returns the same offset.
func Scroll(point gott.Point, size gott.Size, offset gott.Point) gott.Point {
	return gott.Point{
		Row: scrollAxis(point.Row, size.Rows, offset.Row),
		Col: scrollAxis(point.Col, size.Cols, offset.Col),
	}
}

// An axis with no room to show anything keeps its offset.
func scrollAxis(position, extent, offset int) int {
	if extent <= 0 {
		return offset
	}
	if position < offset {
		// scroll up (or left)
		return position
	}
	if position-offset >= extent {
		// scroll down (or right)
		return position - extent + 1
	}
	return offset
}
