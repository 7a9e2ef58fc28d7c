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

import (
	"math"
	"testing"
)

func TestSaturatingSub(t *testing.T) {
	if n := SaturatingSub(5, 3); n != 2 {
		t.Errorf("Unexpected difference: %d", n)
	}
	if n := SaturatingSub(3, 5); n != 0 {
		t.Errorf("Difference should saturate at zero, got %d", n)
	}
}

func TestPointSub(t *testing.T) {
	p := Point{Row: 9, Col: 4}.Sub(Point{Row: 7, Col: 4})
	if p != (Point{Row: 2, Col: 0}) {
		t.Errorf("Unexpected difference: %+v", p)
	}
}

func TestPointSubSaturates(t *testing.T) {
	if Debug {
		t.Skip("subtracting a larger point panics in debug builds")
	}
	p := Point{Row: 1, Col: 1}.Sub(Point{Row: 3, Col: 0})
	if p != (Point{Row: 0, Col: 1}) {
		t.Errorf("Unexpected difference: %+v", p)
	}
}

func TestSaturatingMul(t *testing.T) {
	if n := SaturatingMul(3, 4); n != 12 {
		t.Errorf("Unexpected product: %d", n)
	}
	if n := SaturatingMul(24, math.MaxInt); n != math.MaxInt {
		t.Errorf("Product should saturate, got %d", n)
	}
	if n := SaturatingMul(24, -2); n != 0 {
		t.Errorf("Negative factors should give zero, got %d", n)
	}
}

func TestDirectionString(t *testing.T) {
	if s := MoveEndOfLine.String(); s != "end-of-line" {
		t.Errorf("Unexpected name: %s", s)
	}
}
