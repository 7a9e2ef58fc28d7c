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

// Package editor implements the document model of gotv.
// A document is a list of immutable lines and a point that moves through
// them. Moves never fail: rows and columns saturate at the edges of the
// document, and moving left or right across a line boundary wraps to the
// neighboring line. The editor keeps a display offset that scrolls the
// smallest amount needed to keep the point visible and renders the
// visible rows into a Surface.
package editor
