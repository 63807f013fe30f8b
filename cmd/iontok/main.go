/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/iontok/iontok/internal/diag"
	"github.com/iontok/iontok/iontok"
)

// version is set at build time via -ldflags; "dev" covers a plain go build.
var version = "dev"

// main is the main entry point for iontok.
func main() {
	if len(os.Args) <= 1 {
		printHelp()
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp()

	case "version", "--version", "-v":
		fmt.Println(version)

	case "scan":
		err = scan(os.Args[2:])

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  iontok help")
	fmt.Println("  iontok version")
	fmt.Println("  iontok scan [file]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  help       Prints this help message.")
	fmt.Println("  version    Prints version information about this tool.")
	fmt.Println("  scan       Prints the token stream for the given input (or stdin).")
}

// scan reads the named file, or stdin if args is empty, and prints one
// line per token: its byte offset, kind, and whether it was left
// unfinished (a payload or container the caller would need to step into
// or Finish).
func scan(args []string) error {
	source := "<stdin>"
	in := os.Stdin

	if len(args) > 0 {
		source = args[0]
		f, err := os.Open(source)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	tok := iontok.New(in)
	for {
		pos := tok.Pos()
		if err := tok.Next(); err != nil {
			return diag.Wrap(source, pos, err)
		}

		fmt.Printf("%8d  %-16s unfinished=%v\n", pos, tok.Kind(), tok.Unfinished())

		if tok.Kind() == iontok.EOF {
			return nil
		}

		if tok.Unfinished() {
			if _, err := tok.Finish(); err != nil {
				return diag.Wrap(source, tok.Pos(), err)
			}
		}
	}
}
