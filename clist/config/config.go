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

// Package config provides basic infrastructure to set configuration settings
// for clist. Each setting that can be changed from the command line must
// have a corresponding field in Config with a `flag` struct tag naming it.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Robbienicur/CircularLikedList/pkg/log"
)

// Config holds configuration that is not part of the list itself.
type Config struct {
	// ConfigFile is the path of an optional TOML file with seed values and
	// flag overrides.
	ConfigFile string `flag:"config"`

	// LogFilename is the filename to log to, if not empty.
	LogFilename string `flag:"log"`

	// LogFormat is the log format.
	LogFormat string `flag:"log-format"`

	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug"`

	// AlsoLogToStderr allows to send log messages to stderr.
	AlsoLogToStderr bool `flag:"alsologtostderr"`

	// Prompt controls when the menu prints its banner and prompts.
	Prompt PromptMode `flag:"prompt"`

	// Separator separates values when the menu displays the list.
	Separator string `flag:"separator"`

	// Seed holds values pushed to the back of a fresh list before the
	// session starts. It can only be set from the config file.
	Seed []int
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json", "json-k8s":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text', 'json', or 'json-k8s'", c.LogFormat)
	}
	if c.Separator == "" {
		return fmt.Errorf("separator cannot be empty")
	}
	return nil
}

// Log logs important aspects of the configuration, including the flags that
// differ from their defaults, wherever they were set.
func (c *Config) Log() {
	log.Infof("Config:")
	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if name, ok := f.Tag.Lookup("flag"); ok {
			log.Infof("\t%s (--%s): %v", f.Name, name, obj.Field(i).Interface())
		}
	}
	log.Infof("\tSeed: %v", c.Seed)
	log.Infof("\tNon-default flags: %s", strings.Join(c.ToFlags(), " "))
}

// PromptMode tells the menu when to print prompts.
type PromptMode int

const (
	// PromptAuto prints prompts only when stdin is a terminal.
	PromptAuto PromptMode = iota

	// PromptAlways always prints prompts.
	PromptAlways

	// PromptNever never prints prompts.
	PromptNever
)

func promptModePtr(v PromptMode) *PromptMode {
	return &v
}

// Set implements flag.Value.
func (p *PromptMode) Set(v string) error {
	switch v {
	case "auto":
		*p = PromptAuto
	case "always":
		*p = PromptAlways
	case "never":
		*p = PromptNever
	default:
		return fmt.Errorf("invalid prompt mode %q", v)
	}
	return nil
}

// Get implements flag.Getter.
func (p *PromptMode) Get() any {
	return *p
}

// String implements flag.Value.
func (p PromptMode) String() string {
	switch p {
	case PromptAuto:
		return "auto"
	case PromptAlways:
		return "always"
	case PromptNever:
		return "never"
	}
	panic(fmt.Sprintf("Invalid prompt mode %d", p))
}

// Enabled resolves the mode given whether the input is interactive.
func (p PromptMode) Enabled(interactive bool) bool {
	switch p {
	case PromptAlways:
		return true
	case PromptNever:
		return false
	default:
		return interactive
	}
}
