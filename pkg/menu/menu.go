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

// Package menu implements a line based, numeric menu that drives a
// clist.List.
//
// The menu reads whitespace separated integers. The first integer of every
// round selects an action; actions that need arguments read them next, in
// the order position, value. Input that is not a number ends the session
// when it appears in place of a choice and is reported otherwise.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Robbienicur/CircularLikedList/pkg/clist"
	"github.com/Robbienicur/CircularLikedList/pkg/log"
)

// Choice is a menu entry number.
type Choice int

// Menu entries. The numbering is part of the user interface and must not
// change.
const (
	Exit Choice = iota
	AddFront
	AddBack
	AddAt
	RemoveFront
	RemoveBack
	RemoveAt
	Search
	Display
	Traverse
	Size
	IsEmpty
	GetHead
	GetTail
	Clear
)

var choiceNames = map[Choice]string{
	Exit:        "exit",
	AddFront:    "add_front",
	AddBack:     "add_back",
	AddAt:       "add_at",
	RemoveFront: "remove_front",
	RemoveBack:  "remove_back",
	RemoveAt:    "remove_at",
	Search:      "search",
	Display:     "display",
	Traverse:    "traverse",
	Size:        "size",
	IsEmpty:     "is_empty",
	GetHead:     "get_head",
	GetTail:     "get_tail",
	Clear:       "clear",
}

func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

const banner = `
MENU
1 Add front  2 Add back  3 Add at pos
4 Rem front  5 Rem back  6 Rem at pos
7 Search     8 Display   9 Traverse
10 Size      11 IsEmpty  12 GetHead
13 GetTail   14 Clear    0 Exit
`

// errEndOfInput is returned by the token readers when the input is
// exhausted.
var errEndOfInput = errors.New("end of input")

// errBadNumber is returned by readInt when the token is not an integer.
var errBadNumber = errors.New("invalid number")

// errAbandoned aborts the current action without ending the session.
var errAbandoned = errors.New("action abandoned")

// Menu drives List from the tokens read from In and writes results to Out.
type Menu struct {
	// List is the list being edited. It is owned by the caller.
	List *clist.List

	// In and Out are the session's input and output.
	In  io.Reader
	Out io.Writer

	// Prompt enables the banner and the input prompts. Sessions that are not
	// attached to a terminal usually turn it off.
	Prompt bool

	// Separator is used by the display action. Empty selects
	// DefaultSeparator.
	Separator string

	// Log receives debug and warning messages. Nil selects the global
	// logger at the time Run is called.
	Log log.Logger

	tokens <-chan token
	warn   log.Logger
}

// Run executes the menu until the exit choice, the end of input, or the
// cancellation of ctx. The end of input is not an error; a failure to read
// In is returned wrapped.
func (m *Menu) Run(ctx context.Context) error {
	logger := m.Log
	if logger == nil {
		logger = log.Log()
	}
	m.warn = log.RateLimitedLogger(logger, time.Second)

	done := make(chan struct{})
	defer close(done)
	m.tokens = scan(m.In, done)

	for {
		if m.Prompt {
			fmt.Fprint(m.Out, banner)
			fmt.Fprint(m.Out, "Choice: ")
		}
		c, err := m.readInt(ctx)
		switch {
		case errors.Is(err, errEndOfInput), errors.Is(err, errBadNumber):
			// Mirrors a failed read of the choice: the session is over.
			logger.Debugf("menu: input ended: %v", err)
			return nil
		case err != nil:
			return err
		}
		if Choice(c) == Exit {
			logger.Debugf("menu: exit")
			return nil
		}
		if err := m.dispatch(ctx, Choice(c)); err != nil {
			switch {
			case errors.Is(err, errAbandoned):
				continue
			case errors.Is(err, errEndOfInput):
				return nil
			default:
				return err
			}
		}
		logger.Debugf("menu: %v done, %d elements", Choice(c), m.List.Len())
	}
}

// dispatch performs a single non-exit choice.
func (m *Menu) dispatch(ctx context.Context, c Choice) error {
	l := m.List
	switch c {
	case AddFront, AddBack:
		v, err := m.readArg(ctx, "Val: ")
		if err != nil {
			return err
		}
		if c == AddFront {
			l.PushFront(v)
		} else {
			l.PushBack(v)
		}
	case AddAt:
		pos, err := m.readArg(ctx, "Pos: ")
		if err != nil {
			return err
		}
		v, err := m.readArg(ctx, "Val: ")
		if err != nil {
			return err
		}
		if err := l.Insert(pos, v); err != nil {
			m.warn.Warningf("menu: %v(%d, %d): %v", c, pos, v, err)
			m.println("invalid position")
		}
	case RemoveFront, RemoveBack:
		var (
			v   int
			err error
		)
		if c == RemoveFront {
			v, err = l.PopFront()
		} else {
			v, err = l.PopBack()
		}
		if err != nil {
			m.println("empty")
			break
		}
		m.printf("Removed %d\n", v)
	case RemoveAt:
		pos, err := m.readArg(ctx, "Pos: ")
		if err != nil {
			return err
		}
		v, err := l.Remove(pos)
		if err != nil {
			m.warn.Warningf("menu: %v(%d): %v", c, pos, err)
			m.println("invalid position")
			break
		}
		m.printf("Removed %d\n", v)
	case Search:
		v, err := m.readArg(ctx, "Val: ")
		if err != nil {
			return err
		}
		i, err := l.Search(v)
		if err != nil {
			m.println("Index: not found")
			break
		}
		m.printf("Index: %d\n", i)
	case Display:
		m.println(Format(l, m.Separator))
	case Traverse:
		m.println(FormatTraversal(l))
	case Size:
		m.printf("Size=%d\n", l.Len())
	case IsEmpty:
		answer := "no"
		if l.Empty() {
			answer = "yes"
		}
		m.printf("Empty? %s\n", answer)
	case GetHead:
		v, err := l.Front()
		if err != nil {
			m.println("empty")
			break
		}
		m.printf("Head=%d\n", v)
	case GetTail:
		v, err := l.Back()
		if err != nil {
			m.println("empty")
			break
		}
		m.printf("Tail=%d\n", v)
	case Clear:
		l.Clear()
		m.println("Cleared")
	default:
		m.warn.Warningf("menu: unknown choice %d", int(c))
		m.println("invalid option")
	}
	return nil
}

// readArg prompts for and reads an integer argument. A malformed number is
// reported to the user and turned into errAbandoned so the action is
// abandoned while the session continues.
func (m *Menu) readArg(ctx context.Context, prompt string) (int, error) {
	if m.Prompt {
		fmt.Fprint(m.Out, prompt)
	}
	v, err := m.readInt(ctx)
	if errors.Is(err, errBadNumber) {
		m.println("invalid number")
		return 0, errAbandoned
	}
	return v, err
}

func (m *Menu) readInt(ctx context.Context) (int, error) {
	var tok string
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case t, ok := <-m.tokens:
		if !ok {
			return 0, errEndOfInput
		}
		if t.err != nil {
			return 0, fmt.Errorf("reading input: %w", t.err)
		}
		tok = t.text
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		m.warn.Warningf("menu: %q is not a number", tok)
		return 0, fmt.Errorf("%w: %q", errBadNumber, tok)
	}
	return v, nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.Out, s)
}

func (m *Menu) printf(format string, v ...any) {
	fmt.Fprintf(m.Out, format, v...)
}

// token is a single word read from the input, or the error that stopped
// reading.
type token struct {
	text string
	err  error
}

// scan splits r into whitespace separated tokens on its own goroutine, so a
// blocked read never holds up cancellation. A read error, including a token
// longer than bufio.MaxScanTokenSize, is sent as the last item. The returned
// channel is closed after the last item; done stops the goroutine early.
func scan(r io.Reader, done <-chan struct{}) <-chan token {
	ch := make(chan token)
	go func() {
		defer close(ch)
		s := bufio.NewScanner(r)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			select {
			case ch <- token{text: s.Text()}:
			case <-done:
				return
			}
		}
		// Err is nil at io.EOF.
		if err := s.Err(); err != nil {
			select {
			case ch <- token{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}
