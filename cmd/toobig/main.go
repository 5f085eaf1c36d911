// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command toobig evaluates reverse polish notation expressions over numbers
// too big for a float64.
//
// Usage:
//
//	toobig [flags] [--] tokens...
//
// For example, squaring a googolplex:
//
//	$ toobig 1e1e100 dup '*'
//	1e2e100
//
// Negative numbers must follow a "--" argument so that they are not taken for
// flags. See package rpn for the list of operators. Defaults for the flags are
// read from the environment (see package config).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/db47h/toobig"
	"github.com/db47h/toobig/context"
	"github.com/db47h/toobig/internal/config"
	"github.com/db47h/toobig/internal/logging"
	"github.com/db47h/toobig/internal/rpn"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// output is the JSON document printed with -json.
type output struct {
	Stack []toobig.Float `json:"stack"`
	Text  []string       `json:"text"`
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "toobig: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("toobig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	demo := fs.Bool("demo", false, "print a walk-through of toobig features")
	jsonOut := fs.Bool("json", cfg.Output.Encoding == "json", "print the stack as JSON")
	sci := fs.Bool("e", cfg.Output.Format == "e", "always use scientific notation")
	prec := fs.Int("prec", cfg.Output.Prec, "mantissa digits after the decimal point, -1 for the shortest representation")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: toobig [flags] [--] tokens...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid logging configuration, using defaults", zap.String("level", cfg.Logging.Level), zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.New(context.WithLogger(logger))
	if *demo {
		runDemo(stdout, ctx)
		return 0
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	stack, err := rpn.Eval(ctx, fs.Args())
	if err != nil {
		logger.Debug("evaluation failed", zap.Strings("tokens", fs.Args()), zap.Error(err))
		fmt.Fprintf(stderr, "toobig: %v\n", err)
		return 1
	}

	format := byte('g')
	if *sci {
		format = 'e'
	}
	text := make([]string, len(stack))
	for i, x := range stack {
		text[i] = x.Text(format, *prec)
	}

	if *jsonOut {
		data, err := sonic.Marshal(output{Stack: stack, Text: text})
		if err != nil {
			fmt.Fprintf(stderr, "toobig: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s\n", data)
		return 0
	}
	for _, s := range text {
		fmt.Fprintln(stdout, s)
	}
	return 0
}
