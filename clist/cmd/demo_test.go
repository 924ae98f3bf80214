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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Robbienicur/CircularLikedList/pkg/clist"
)

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, " -> "); err != nil {
		t.Fatalf("runDemo() failed: %v\n%s", err, buf.String())
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), len(demoSteps); got != want {
		t.Fatalf("runDemo() printed %d lines, want %d:\n%s", got, want, buf.String())
	}
	if !strings.HasSuffix(lines[2], "List: [1 -> 2 -> 3] (circular)") {
		t.Errorf("line %q does not show the built list", lines[2])
	}
	if !strings.HasSuffix(lines[4], "List: [1 -> 3] (circular)") {
		t.Errorf("line %q does not show the list after remove_at", lines[4])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "List: []") {
		t.Errorf("line %q does not show the cleared list", lines[len(lines)-1])
	}
}

func TestDemoDetectsFailure(t *testing.T) {
	saved := demoSteps
	defer func() { demoSteps = saved }()
	demoSteps = append([]demoStep(nil), saved...)
	demoSteps = append(demoSteps, demoStep{
		name: "peek_head",
		run:  func(l *clist.List) string { return show(l.Front()) },
		want: "1",
	})

	var buf bytes.Buffer
	err := runDemo(&buf, " -> ")
	if err == nil {
		t.Fatalf("runDemo() succeeded, want failure on an empty list peek")
	}
	if !strings.Contains(buf.String(), "FAIL") {
		t.Errorf("output does not flag the failing step:\n%s", buf.String())
	}
}
