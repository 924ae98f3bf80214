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

// Package cli is the main entrypoint for clist.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/Robbienicur/CircularLikedList/clist/cmd"
	"github.com/Robbienicur/CircularLikedList/clist/cmd/util"
	"github.com/Robbienicur/CircularLikedList/clist/config"
	"github.com/Robbienicur/CircularLikedList/pkg/cleanup"
	"github.com/Robbienicur/CircularLikedList/pkg/log"
	"github.com/google/subcommands"
)

// version is set at link time with -ldflags "-X".
var version = "devel"

// versionFlagName is the name of a flag that triggers printing the version.
const versionFlagName = "version"

// Main is the main entrypoint.
func Main() {
	os.Exit(int(run(context.Background(), flag.CommandLine, os.Args[1:])))
}

// run parses args with flagSet, sets up logging and dispatches to the
// selected subcommand.
func run(ctx context.Context, flagSet *flag.FlagSet, args []string) subcommands.ExitStatus {
	commander := subcommands.NewCommander(flagSet, "clist")
	// Register all commands.
	forEachCmd(commander, commander.Register)

	// Register with the main command line.
	config.RegisterFlags(flagSet)
	showVersion := flagSet.Bool(versionFlagName, false, "show version and exit.")

	// All subcommands must be registered before flag parsing.
	if err := flagSet.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}

	// Are we showing the version?
	if *showVersion {
		util.Infof("clist version %s", version)
		return subcommands.ExitSuccess
	}

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flagSet)
	if err != nil {
		return util.Errorf("%v", err)
	}

	closeLog, err := setupLogging(conf, flagSet.Arg(0))
	if err != nil {
		return util.Errorf("%v", err)
	}
	defer closeLog()

	const delimString = `**************** clist ****************`
	log.Infof(delimString)
	log.Infof("Version %s, %s, %s, PID %d", version, runtime.Version(), runtime.GOARCH, os.Getpid())
	log.Infof("Args: %v", args)
	conf.Log()
	log.Infof(delimString)

	// Call the subcommand and pass in the configuration.
	status := commander.Execute(ctx, conf)
	log.Infof("Exiting with status: %v", status)
	return status
}

// forEachCmd invokes the passed callback for each command supported by clist.
func forEachCmd(commander *subcommands.Commander, cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(commander.HelpCommand(), "")
	cb(commander.FlagsCommand(), "")
	cb(commander.CommandsCommand(), "")

	cb(new(cmd.Menu), "")
	cb(new(cmd.Demo), "")
}

// setupLogging opens the log file, if any, and installs the global log
// target. The returned function closes the log file.
func setupLogging(conf *config.Config, command string) (func(), error) {
	var cu cleanup.Cleanup
	defer cu.Clean()

	var logFile io.Writer = io.Discard
	if conf.LogFilename != "" {
		f, err := log.OpenFile(conf.LogFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, logFileOpts{command: command, start: time.Now()})
		if err != nil {
			return nil, fmt.Errorf("error opening log file %q: %w", conf.LogFilename, err)
		}
		cu = cleanup.Make(func() {
			util.ErrorLogger = nil
			f.Close()
		})
		logFile = f
		util.ErrorLogger = f
	}

	emitters := log.MultiEmitter{newEmitter(conf.LogFormat, logFile)}
	if conf.AlsoLogToStderr {
		emitters = append(emitters, newEmitter(conf.LogFormat, os.Stderr))
	}
	if len(emitters) == 1 {
		// Use the singular emitter to avoid needless
		// `for` loop overhead when logging to a single place.
		log.SetTarget(emitters[0])
	} else {
		log.SetTarget(&emitters)
	}
	level := log.Info
	if conf.Debug {
		level = log.Debug
	}
	log.SetLevel(level)
	if err := log.CopyStandardLogTo(log.Info); err != nil {
		return nil, err
	}
	return cu.Release(), nil
}

func newEmitter(format string, logFile io.Writer) log.Emitter {
	switch format {
	case "text":
		return log.GoogleEmitter{Emitter: &log.Writer{Next: logFile}}
	case "json":
		return log.JSONEmitter{Writer: &log.Writer{Next: logFile}}
	case "json-k8s":
		return log.K8sJSONEmitter{Writer: &log.Writer{Next: logFile}}
	}
	util.Fatalf("invalid log format %q, must be 'text', 'json', or 'json-k8s'", format)
	panic("unreachable")
}
