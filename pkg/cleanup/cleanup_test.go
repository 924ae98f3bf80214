// Copyright 2025 The CircularLikedList Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cleanup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder returns a cleanup function that appends name to *ran.
func recorder(ran *[]string, name string) func() {
	return func() { *ran = append(*ran, name) }
}

func TestClean(t *testing.T) {
	var ran []string
	func() {
		cu := Make(recorder(&ran, "log file"))
		cu.Add(recorder(&ran, "error logger"))
		defer cu.Clean()
	}()
	if d := cmp.Diff([]string{"error logger", "log file"}, ran); d != "" {
		t.Errorf("cleanup order diff (-want +got):\n%s", d)
	}
}

func TestCleanTwice(t *testing.T) {
	var ran []string
	cu := Make(recorder(&ran, "once"))
	cu.Clean()
	cu.Clean()
	if d := cmp.Diff([]string{"once"}, ran); d != "" {
		t.Errorf("cleanup diff (-want +got):\n%s", d)
	}
}

func TestRelease(t *testing.T) {
	var ran []string
	var cleaner func()
	func() {
		cu := Make(recorder(&ran, "a"))
		cu.Add(recorder(&ran, "b"))
		defer cu.Clean()
		cleaner = cu.Release()
	}()
	if len(ran) != 0 {
		t.Fatalf("released cleanup ran %v on Clean", ran)
	}

	cleaner()
	if d := cmp.Diff([]string{"b", "a"}, ran); d != "" {
		t.Errorf("released cleaner diff (-want +got):\n%s", d)
	}
}
