// Copyright (c) 2024 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lispread reads Lisp forms from a file or stdin and prints the parsed value
// tree, one line per top-level form.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	Logging "github.com/fnparse-go/fnparse/logging"
	"github.com/fnparse-go/fnparse/lisp"
	C "github.com/urfave/cli/v2"
)

const keyFile = "file"

var flagFile = &C.StringFlag{
	Name:    keyFile,
	Aliases: []string{"f"},
	Usage:   "read forms from `FILE` instead of stdin",
}

func readSource(ctx *C.Context) ([]byte, error) {
	if name := ctx.String(keyFile); name != "" {
		return os.ReadFile(name)
	}
	return io.ReadAll(os.Stdin)
}

func runRead(info, warn func(string, ...any)) C.ActionFunc {
	return func(ctx *C.Context) error {
		src, err := readSource(ctx)
		if err != nil {
			return C.Exit(err.Error(), 1)
		}
		lisp.SetWarningLogger(warn)

		forms, err := lisp.ReadAllString(string(src))
		if err != nil {
			return C.Exit(err.Error(), 1)
		}
		info("read %d form(s)", len(forms))
		for _, f := range forms {
			fmt.Printf("%#v\n", f)
		}
		return nil
	}
}

func app() *C.App {
	info, warn := Logging.LoggingCallbacks()
	return &C.App{
		Name:  "lispread",
		Usage: "parse a Lisp document and print its forms",
		Flags: []C.Flag{flagFile},
		Action: runRead(info, warn),
	}
}

func main() {
	if err := app().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
