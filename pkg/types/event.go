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

package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
)

type Key int

// Keys
const (
	KeyUnsupported = Key(iota)
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlQ
	KeyCtrlU
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
)

// An Event is a user input.
// Key events carry either a Key or a character in Ch.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Err  error
}
