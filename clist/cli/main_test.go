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

package cli

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Robbienicur/CircularLikedList/clist/cmd/util"
	"github.com/Robbienicur/CircularLikedList/clist/config"
	"github.com/Robbienicur/CircularLikedList/pkg/log"
	"github.com/google/subcommands"
)

func runArgs(args ...string) subcommands.ExitStatus {
	return run(context.Background(), flag.NewFlagSet("test", flag.ContinueOnError), args)
}

func TestDemoCommand(t *testing.T) {
	if got := runArgs("demo", "--quiet"); got != subcommands.ExitSuccess {
		t.Errorf("demo returned %v, want %v", got, subcommands.ExitSuccess)
	}
}

func TestUnknownCommand(t *testing.T) {
	if got := runArgs("frobnicate"); got != subcommands.ExitUsageError {
		t.Errorf("frobnicate returned %v, want %v", got, subcommands.ExitUsageError)
	}
}

func TestBadConfig(t *testing.T) {
	if got := runArgs("--log-format=xml", "demo", "--quiet"); got != subcommands.ExitFailure {
		t.Errorf("bad log format returned %v, want %v", got, subcommands.ExitFailure)
	}
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "logs", "clist-%COMMAND%.log")
	if got := runArgs("--log="+pattern, "--debug", "demo", "--quiet"); got != subcommands.ExitSuccess {
		t.Fatalf("demo returned %v, want %v", got, subcommands.ExitSuccess)
	}
	data, err := os.ReadFile(filepath.Join(dir, "logs", "clist-demo.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "**************** clist ****************") {
		t.Errorf("log file does not contain the banner:\n%s", data)
	}
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")
	conf := &config.Config{LogFilename: path, LogFormat: "json", Separator: " -> "}
	closeLog, err := setupLogging(conf, "menu")
	if err != nil {
		t.Fatalf("setupLogging() failed: %v", err)
	}
	if util.ErrorLogger == nil {
		t.Errorf("ErrorLogger not set while the log file is open")
	}
	log.Infof("still open")
	closeLog()
	if util.ErrorLogger != nil {
		t.Errorf("ErrorLogger still set after closing the log file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "still open") {
		t.Errorf("log file does not contain the message:\n%s", data)
	}

	conf.LogFilename = filepath.Join(path, "not-a-dir", "x.log")
	if _, err := setupLogging(conf, "menu"); err == nil {
		t.Errorf("setupLogging() with an unusable path succeeded, want error")
	}
}

func TestLogFileOpts(t *testing.T) {
	start := time.Date(2025, 3, 4, 5, 6, 7, 8000, time.UTC)
	for _, tc := range []struct {
		opts    logFileOpts
		pattern string
		want    string
	}{
		{logFileOpts{command: "menu", start: start}, "/tmp/%COMMAND%.log", "/tmp/menu.log"},
		{logFileOpts{start: start}, "/tmp/%COMMAND%.log", "/tmp/none.log"},
		{logFileOpts{command: "demo", start: start}, "/tmp/%TIMESTAMP%-%COMMAND%", "/tmp/20250304-050607.000008-demo"},
		{logFileOpts{command: "demo", start: start}, "/tmp/plain.log", "/tmp/plain.log"},
	} {
		if got := tc.opts.Build(tc.pattern); got != tc.want {
			t.Errorf("Build(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}
