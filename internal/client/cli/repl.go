package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// handler runs one command. args are the whitespace-separated tokens that
// followed the command name.
type handler func(ctx context.Context, args []string) error

type command struct {
	name  string
	usage string
	run   handler
}

// runREPL is a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to the matching entry in cmds. "help" lists cmds, "exit" and
// "quit" leave the loop, and so does the end of input. Unknown commands and
// handler errors are reported to w; the loop keeps going.
func runREPL(ctx context.Context, cmds []command, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for {
		fmt.Fprintf(w, "dh %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(w, cmds)
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		c, ok := byName[name]
		if !ok {
			fmt.Fprintln(w, "Unknown command:", name)
			continue
		}
		if err := c.run(ctx, args); err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}

func printHelp(w io.Writer, cmds []command) {
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintf(w, "  %-12s %s\n", "help", "show this list")
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-12s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "  %-12s %s\n", "exit", "leave the program")
}
