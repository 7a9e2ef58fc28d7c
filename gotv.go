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
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/gotv/pkg/commander"
	"github.com/timburks/gotv/pkg/editor"
	"github.com/timburks/gotv/pkg/screen"
	gott "github.com/timburks/gotv/pkg/types"
)

func main() {

	var filename string
	var script string
	logPath := os.Getenv("HOME") + "/.gotvlog"

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No expression specified for --eval option")
				os.Exit(2)
			}
		case "--log": // log file
			i++
			if i < len(os.Args) {
				logPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --log option")
				os.Exit(2)
			}
		default:
			if filename != "" {
				log.Printf("Ignoring extra file %s", argi)
			} else {
				filename = argi
			}
		}
	}

	// The editor holds the document and keeps the point onscreen.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if filename != "" {
		// A file that can't be read leaves the editor empty.
		if err := e.ReadFile(filename); err != nil {
			log.Output(1, err.Error())
			c.SetMessage(err.Error())
		}
	}

	if script != "" {
		// Run a script, print the resulting point and exit.
		if _, err := c.ParseEval(script); err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		cursor := e.GetCursor()
		fmt.Printf("%d,%d\n", cursor.Row, cursor.Col)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Output(1, "gotv must be run in a terminal")
		os.Exit(1)
	}

	err := run(e, c, logPath)
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}
	if !c.IsRunning() {
		fmt.Print("Goodbye.\r\n")
	}
}

// run owns the terminal until the user quits. The terminal is released on
// every way out, including a panic.
func run(e *editor.Editor, c *commander.Commander, logPath string) error {
	// Open a log file.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	log.SetOutput(f)
	defer log.SetOutput(os.Stderr)

	// Run the main event loop.
	for c.IsRunning() {
		if err = s.Render(e, c); err != nil {
			return err
		}
		event := s.GetNextEvent()
		if event.Type == gott.EventError {
			// input failures are not recoverable
			return event.Err
		}
		if err = c.ProcessEvent(event); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
