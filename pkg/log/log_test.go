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

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testWriter struct {
	lines []string
	fail  bool
}

func (w *testWriter) Write(bytes []byte) (int, error) {
	if w.fail {
		return 0, fmt.Errorf("simulated failure")
	}
	w.lines = append(w.lines, string(bytes))
	return len(bytes), nil
}

func TestDropMessages(t *testing.T) {
	tw := &testWriter{}
	w := Writer{Next: tw}
	w.Emit(0, Info, time.Now(), "line 1\n")

	tw.fail = true
	w.Emit(0, Info, time.Now(), "error\n")
	w.Emit(0, Info, time.Now(), "error\n")

	tw.fail = false
	w.Emit(0, Info, time.Now(), "line 2\n")

	want := []string{
		"line 1\n",
		"\n*** Dropped 2 log messages ***\n",
		"line 2\n",
	}
	if d := cmp.Diff(want, tw.lines); d != "" {
		t.Errorf("Writer logged diff (-want +got):\n%s", d)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := &BasicLogger{Level: Info, Emitter: &Writer{Next: &buf}}
	l.Debugf("hidden %d\n", 1)
	l.Infof("shown %d\n", 2)
	l.Warningf("shown %d\n", 3)
	if got, want := buf.String(), "shown 2\nshown 3\n"; got != want {
		t.Errorf("logged %q, want %q", got, want)
	}

	buf.Reset()
	l.SetLevel(Debug)
	l.Debugf("now shown\n")
	if got, want := buf.String(), "now shown\n"; got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestGoogleEmitter(t *testing.T) {
	var buf bytes.Buffer
	l := &BasicLogger{Level: Debug, Emitter: GoogleEmitter{&Writer{Next: &buf}}}
	ts := time.Now()
	l.Warningf("value=%d", 42)

	line := buf.String()
	if !strings.HasPrefix(line, "W") {
		t.Errorf("line %q does not start with the level", line)
	}
	if !strings.Contains(line, "log_test.go:") {
		t.Errorf("line %q does not name the calling file", line)
	}
	if !strings.HasSuffix(line, "] value=42\n") {
		t.Errorf("line %q does not end with the message", line)
	}
	if want := ts.Format("0102"); line[1:5] != want {
		t.Errorf("line %q has date %q, want %q", line, line[1:5], want)
	}
}

func TestJSONEmitters(t *testing.T) {
	var buf bytes.Buffer
	l := &BasicLogger{Level: Debug, Emitter: JSONEmitter{&Writer{Next: &buf}}}
	l.Infof("hello %s", "json")

	var got jsonLog
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal(%q) failed: %v", buf.String(), err)
	}
	if got.Level != Info || !strings.HasSuffix(got.Msg, "] hello json") {
		t.Errorf("got %+v, want info message ending in %q", got, "] hello json")
	}

	buf.Reset()
	l = &BasicLogger{Level: Debug, Emitter: K8sJSONEmitter{&Writer{Next: &buf}}}
	l.Debugf("hello %s", "k8s")
	var k8s k8sJSONLog
	if err := json.Unmarshal(buf.Bytes(), &k8s); err != nil {
		t.Fatalf("Unmarshal(%q) failed: %v", buf.String(), err)
	}
	if k8s.Level != Debug || !strings.HasSuffix(k8s.Log, "] hello k8s") {
		t.Errorf("got %+v, want debug message ending in %q", k8s, "] hello k8s")
	}
}

func TestMultiEmitter(t *testing.T) {
	var a, b bytes.Buffer
	m := MultiEmitter{&Writer{Next: &a}, &Writer{Next: &b}}
	l := &BasicLogger{Level: Info, Emitter: &m}
	l.Infof("both\n")
	if a.String() != "both\n" || b.String() != "both\n" {
		t.Errorf("got %q and %q, want %q in both", a.String(), b.String(), "both\n")
	}
}

func TestRateLimited(t *testing.T) {
	var buf bytes.Buffer
	base := &BasicLogger{Level: Info, Emitter: &Writer{Next: &buf}}
	rl := RateLimitedLogger(base, time.Hour)
	for i := 0; i < 5; i++ {
		rl.Warningf("warn %d\n", i)
	}
	if got, want := buf.String(), "warn 0\n"; got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

type recordEmitter struct {
	msgs []string
}

func (r *recordEmitter) Emit(_ int, _ Level, _ time.Time, format string, v ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, v...))
}

func TestRateLimitedSuppressedCount(t *testing.T) {
	rec := &recordEmitter{}
	now := time.Unix(1000, 0)
	rl := newRateLimitedLogger(&BasicLogger{Level: Info, Emitter: rec}, time.Second, func() time.Time { return now })
	for i := 0; i < 3; i++ {
		rl.Warningf("warn %d", i)
	}
	now = now.Add(time.Second)
	rl.Warningf("warn %d", 3)
	rl.Debugf("not logged")

	want := []string{"warn 0", "2 similar messages suppressed", "warn 3"}
	if d := cmp.Diff(want, rec.msgs); d != "" {
		t.Errorf("logged diff (-want +got):\n%s", d)
	}
}
