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

package commander

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	gott "github.com/timburks/gotv/pkg/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor         gott.Editor
	mode           int    // editor mode
	commandText    string // command as it is being typed on the command line
	lispText       string // lisp command as it is being typed
	multiplierText string // multiplier string as it is being entered
	message        string // status message
}

func NewCommander(e gott.Editor) *Commander {
	return &Commander{editor: e, mode: gott.ModeView}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

// ProcessEvent handles one input event. Errors are also shown on the message bar.
func (c *Commander) ProcessEvent(event *gott.Event) error {
	var err error
	switch event.Type {
	case gott.EventKey:
		err = c.processKey(event)
	case gott.EventResize:
		// the next render picks up the new size
	case gott.EventError:
		err = event.Err
	}
	if err != nil {
		c.message = err.Error()
	}
	return err
}

func (c *Commander) processKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeView:
		return c.processKeyViewMode(event)
	case gott.ModeCommand:
		return c.processKeyCommandMode(event)
	case gott.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) processKeyViewMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.multiplierText = ""
		case gott.KeyCtrlQ:
			return c.eval("(quit)")
		case gott.KeyCtrlB, gott.KeyPgup:
			return c.eval("(page-up)")
		case gott.KeyCtrlF, gott.KeyPgdn:
			return c.eval("(page-down)")
		case gott.KeyCtrlU:
			return c.eval("(half-page-up)")
		case gott.KeyCtrlD:
			return c.eval("(half-page-down)")
		case gott.KeyCtrlA, gott.KeyHome:
			return c.eval("(beginning-of-line)")
		case gott.KeyCtrlE, gott.KeyEnd:
			return c.eval("(end-of-line)")
		case gott.KeyArrowUp:
			return c.eval("(up)")
		case gott.KeyArrowDown:
			return c.eval("(down)")
		case gott.KeyArrowLeft:
			return c.eval("(left)")
		case gott.KeyArrowRight:
			return c.eval("(right)")
		}
		return nil
	}
	switch ch {
	//
	// counts are consumed by the next movement
	//
	case '0':
		if c.multiplierText == "" {
			return c.eval("(beginning-of-line)")
		}
		c.multiplierText += string(ch)
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.multiplierText += string(ch)
	case 'h':
		return c.eval("(left)")
	case 'j':
		return c.eval("(down)")
	case 'k':
		return c.eval("(up)")
	case 'l':
		return c.eval("(right)")
	case '$':
		return c.eval("(end-of-line)")
	case 'g':
		return c.eval("(top)")
	case 'G':
		if c.multiplierText != "" {
			return c.eval(fmt.Sprintf("(goto-line %d)", c.getMultiplier()))
		}
		return c.eval("(bottom)")
	//
	// commands go to the message bar
	//
	case ':':
		c.multiplierText = ""
		c.commandText = ""
		c.mode = gott.ModeCommand
	case '(':
		c.multiplierText = ""
		c.lispText = "("
		c.mode = gott.ModeLisp
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.commandText = ""
			c.mode = gott.ModeView
		case gott.KeyEnter:
			return c.performCommand()
		case gott.KeyBackspace2:
			if len(c.commandText) > 0 {
				c.commandText = c.commandText[0 : len(c.commandText)-1]
			} else {
				c.mode = gott.ModeView
			}
		case gott.KeySpace:
			c.commandText += " "
		}
	}
	if ch != 0 {
		c.commandText += string(ch)
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.lispText = ""
			c.mode = gott.ModeView
		case gott.KeyEnter:
			text := c.lispText
			c.lispText = ""
			c.mode = gott.ModeView
			result, err := c.ParseEval(text)
			if err != nil {
				return err
			}
			c.message = result
		case gott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
			if c.lispText == "" {
				c.mode = gott.ModeView
			}
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText += string(ch)
	}
	return nil
}

func (c *Commander) performCommand() error {
	e := c.editor

	command := strings.TrimSpace(c.commandText)
	c.commandText = ""
	c.mode = gott.ModeView

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}
	if i, err := strconv.Atoi(parts[0]); err == nil {
		e.MoveToLine(i)
		return nil
	}
	switch parts[0] {
	case "q", "quit":
		c.mode = gott.ModeQuit
	case "$":
		e.MoveToLine(e.GetLineCount())
	case "cursor":
		cursor := e.GetCursor()
		c.message = fmt.Sprintf("%d,%d", cursor.Row, cursor.Col)
	default:
		return fmt.Errorf("unknown command: %s", parts[0])
	}
	return nil
}

// eval runs a command bound to a key.
func (c *Commander) eval(command string) error {
	_, err := c.ParseEval(command)
	return err
}

// getMultiplier returns and clears the pending count. It is 1 if no count was typed.
func (c *Commander) getMultiplier() int {
	if c.multiplierText == "" {
		return 1
	}
	text := c.multiplierText
	c.multiplierText = ""
	i, err := strconv.Atoi(text)
	if err != nil || i < 1 {
		log.Printf("ignoring count %q", text)
		return 1
	}
	return i
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case gott.ModeCommand:
		line = ":" + c.commandText
	case gott.ModeLisp:
		line = c.lispText
	default:
		line = c.message
		if c.multiplierText != "" {
			line = c.multiplierText
		}
	}
	if runes := []rune(line); len(runes) > length {
		line = string(runes[0:max(length, 0)])
	}
	return line
}
