package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Store(ctx context.Context) error
	Retrieve(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt is "vault> ", with the status from statusFn shown before the
// ">" when it is not empty. Commands:
//
//	help          show available commands
//	store         store a secret
//	retrieve      retrieve a secret
//	exit | quit   leave the program
//
// Command handlers report their own outcome to the user, so their errors
// are not printed here. The loop ends on "exit", "quit" or end of input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		prompt := "vault> "
		if s := statusFn(); s != "" {
			prompt = fmt.Sprintf("vault %s> ", s)
		}
		printlnFn(prompt)

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: store, retrieve, help, exit")

		case "store":
			_ = a.Store(ctx)

		case "retrieve":
			_ = a.Retrieve(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
