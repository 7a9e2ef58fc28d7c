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
	"errors"
	"fmt"
	"log"

	"github.com/steelseries/golisp"
	gott "github.com/timburks/gotv/pkg/types"
)

// Primitives act on the commander that is evaluating an expression.
var active *Commander

var errNoCommander = errors.New("no active commander")

func init() {
	golisp.MakePrimitiveFunction("up", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveUp, n) }))
	golisp.MakePrimitiveFunction("down", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveDown, n) }))
	golisp.MakePrimitiveFunction("left", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveLeft, n) }))
	golisp.MakePrimitiveFunction("right", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveRight, n) }))
	golisp.MakePrimitiveFunction("beginning-of-line", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveStartOfLine, n) }))
	golisp.MakePrimitiveFunction("end-of-line", "*", movement(func(e gott.Editor, n int) { e.MovePoint(gott.MoveEndOfLine, n) }))
	golisp.MakePrimitiveFunction("page-up", "*", movement(gott.Editor.PageUp))
	golisp.MakePrimitiveFunction("page-down", "*", movement(gott.Editor.PageDown))
	golisp.MakePrimitiveFunction("half-page-up", "*", movement(gott.Editor.HalfPageUp))
	golisp.MakePrimitiveFunction("half-page-down", "*", movement(gott.Editor.HalfPageDown))
	golisp.MakePrimitiveFunction("goto-line", "*", movement(gott.Editor.MoveToLine))
	golisp.MakePrimitiveFunction("top", "0", movement(func(e gott.Editor, n int) { e.MoveToLine(1) }))
	golisp.MakePrimitiveFunction("bottom", "0", movement(func(e gott.Editor, n int) { e.MoveToLine(e.GetLineCount()) }))
	golisp.MakePrimitiveFunction("row", "0", RowImpl)
	golisp.MakePrimitiveFunction("column", "0", ColumnImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("quit", "0", QuitImpl)
}

// movement makes a primitive that takes an optional count.
// Without one it uses the count typed before the key.
func movement(move func(e gott.Editor, n int)) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if active == nil {
			return nil, errNoCommander
		}
		count := active.getMultiplier()
		if !golisp.NilP(args) {
			n, err := intArgument(golisp.Car(args))
			if err != nil {
				return nil, err
			}
			count = n
		}
		move(active.editor, count)
		return golisp.IntegerWithValue(int64(active.editor.GetCursor().Row)), nil
	}
}

func intArgument(val *golisp.Data) (int, error) {
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	default:
		return 0, errors.New("count must be a number")
	}
}

func RowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.editor.GetCursor().Row)), nil
}

func ColumnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.editor.GetCursor().Col)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.editor.GetLineCount())), nil
}

func QuitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.mode = gott.ModeQuit
	return nil, nil
}

// ParseEval evaluates a lisp expression against the commander's editor and
// returns a printable result.
func (c *Commander) ParseEval(command string) (string, error) {
	active = c
	defer func() { active = nil }()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	switch {
	case value == nil:
		return "", nil
	case golisp.IntegerP(value):
		return fmt.Sprintf("%d", golisp.IntegerValue(value)), nil
	case golisp.FloatP(value):
		return fmt.Sprintf("%v", golisp.FloatValue(value)), nil
	default:
		return golisp.String(value), nil
	}
}
