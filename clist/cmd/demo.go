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
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Robbienicur/CircularLikedList/clist/cmd/util"
	"github.com/Robbienicur/CircularLikedList/clist/config"
	"github.com/Robbienicur/CircularLikedList/pkg/clist"
	"github.com/Robbienicur/CircularLikedList/pkg/log"
	"github.com/Robbienicur/CircularLikedList/pkg/menu"
	"github.com/google/subcommands"
)

// Demo implements subcommands.Command for the "demo" command.
type Demo struct {
	quiet bool
}

// Name implements subcommands.Command.Name.
func (*Demo) Name() string {
	return "demo"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Demo) Synopsis() string {
	return "run a scripted session and verify every step"
}

// Usage implements subcommands.Command.Usage.
func (*Demo) Usage() string {
	return `demo [options] - run a scripted session and verify every step.

The session builds [1, 2, 3], removes the middle element, inspects both
ends, searches, and clears the list. The command fails if any step
produces an unexpected result.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (d *Demo) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&d.quiet, "quiet", false, "only report failures.")
}

// Execute implements subcommands.Command.Execute.
func (d *Demo) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	var out io.Writer = os.Stdout
	if d.quiet {
		out = io.Discard
	}
	if err := runDemo(out, conf.Separator); err != nil {
		return util.Errorf("demo failed: %v", err)
	}
	return subcommands.ExitSuccess
}

// demoStep is one operation of the scripted session. run performs it and
// renders the result.
type demoStep struct {
	name string
	run  func(l *clist.List) string
	want string
}

func show(v int, err error) string {
	if err != nil {
		return err.Error()
	}
	return strconv.Itoa(v)
}

var demoSteps = []demoStep{
	{"add_back 1", func(l *clist.List) string { l.PushBack(1); return "" }, ""},
	{"add_back 2", func(l *clist.List) string { l.PushBack(2); return "" }, ""},
	{"add_back 3", func(l *clist.List) string { l.PushBack(3); return "" }, ""},
	{"size", func(l *clist.List) string { return strconv.Itoa(l.Len()) }, "3"},
	{"remove_at 1", func(l *clist.List) string { return show(l.Remove(1)) }, "2"},
	{"size", func(l *clist.List) string { return strconv.Itoa(l.Len()) }, "2"},
	{"peek_head", func(l *clist.List) string { return show(l.Front()) }, "1"},
	{"peek_tail", func(l *clist.List) string { return show(l.Back()) }, "3"},
	{"search 3", func(l *clist.List) string { return show(l.Search(3)) }, "1"},
	{"clear", func(l *clist.List) string { l.Clear(); return "" }, ""},
	{"is_empty", func(l *clist.List) string { return strconv.FormatBool(l.Empty()) }, "true"},
}

// runDemo executes demoSteps on a fresh list, printing each step and the
// list after it to w.
func runDemo(w io.Writer, sep string) error {
	l := clist.New()
	failed := 0
	for i, s := range demoSteps {
		got := s.run(l)
		status := "ok"
		if got != s.want {
			status = fmt.Sprintf("FAIL (want %q)", s.want)
			log.Warningf("demo step %d %q: got %q, want %q", i, s.name, got, s.want)
			failed++
		}
		fmt.Fprintf(w, "%-12s %-4s %-6s %s\n", s.name, got, status, menu.Format(l, sep))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(demoSteps))
	}
	return nil
}
