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
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/Robbienicur/CircularLikedList/clist/cmd/util"
	"github.com/Robbienicur/CircularLikedList/clist/config"
	"github.com/Robbienicur/CircularLikedList/pkg/clist"
	"github.com/Robbienicur/CircularLikedList/pkg/log"
	"github.com/Robbienicur/CircularLikedList/pkg/menu"
	"github.com/google/subcommands"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Menu implements subcommands.Command for the "menu" command.
type Menu struct{}

// Name implements subcommands.Command.Name.
func (*Menu) Name() string {
	return "menu"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Menu) Synopsis() string {
	return "edit a circular list through an interactive numeric menu"
}

// Usage implements subcommands.Command.Usage.
func (*Menu) Usage() string {
	return `menu - edit a circular list through an interactive numeric menu.

The menu reads whitespace separated numbers from stdin. The first number
selects an action, followed by its position and value arguments, if any:

    1 Add front  2 Add back  3 Add at pos
    4 Rem front  5 Rem back  6 Rem at pos
    7 Search     8 Display   9 Traverse
    10 Size      11 IsEmpty  12 GetHead
    13 GetTail   14 Clear    0 Exit

Prompts are printed when stdin is a terminal, see --prompt.

EXAMPLE:
    $ echo "2 1 2 2 2 3 8" | clist menu
    List: [1 -> 2 -> 3] (circular)
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Menu) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Menu) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	ctx, stop := signal.NotifyContext(ctx, unix.SIGINT, unix.SIGTERM)
	defer stop()

	l := clist.New()
	defer l.Clear()
	for _, v := range conf.Seed {
		l.PushBack(v)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	m := menu.Menu{
		List:      l,
		In:        os.Stdin,
		Out:       os.Stdout,
		Prompt:    conf.Prompt.Enabled(interactive),
		Separator: conf.Separator,
	}
	log.Debugf("Starting menu, interactive: %t, seed: %v", interactive, conf.Seed)
	if err := m.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Infof("Menu interrupted")
			return subcommands.ExitSuccess
		}
		return util.Errorf("menu failed: %v", err)
	}
	log.Infof("Menu done, %d elements left", l.Len())
	return subcommands.ExitSuccess
}
