// Package console is a line-oriented operator front end for the driver core.
//
// Each input line is one command; arguments that may contain spaces are
// separated by '|'. Orders and notifications can be referenced by their
// position in the last listing instead of their ID.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"porter/internal/adapters/in/voice"
	"porter/internal/core/domain/model/kernel"
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

const prompt = "porter> "

type command struct {
	usage string
	run   func(ctx context.Context, args string) error
}

type Console struct {
	handlers Handlers
	voice    *voice.Dispatcher
	out      io.Writer
	logger   *slog.Logger
	commands map[string]command

	lastOrders        []kernel.UUID
	lastNotifications []kernel.UUID
}

func New(handlers Handlers, dispatcher *voice.Dispatcher, out io.Writer, logger *slog.Logger) *Console {
	c := &Console{
		handlers: handlers,
		voice:    dispatcher,
		out:      out,
		logger:   logger.With("component", "console"),
	}

	c.commands = map[string]command{
		"help":          {"help", c.help},
		"signup":        {"signup <name>|<email>|<phone>|<bike|scooter|car|van>|<vehicle number>|<license number>|<password>", c.signup},
		"approve":       {"approve <email>", c.approve},
		"suspend":       {"suspend <email>", c.suspend},
		"login":         {"login <email> <password>", c.login},
		"logout":        {"logout", c.logout},
		"whoami":        {"whoami", c.whoami},
		"profile":       {"profile [name=<v>|phone=<v>|vehicle_type=<bike|scooter|car|van>|vehicle_number=<v>]", c.profile},
		"toggle":        {"toggle", c.toggle},
		"status":        {"status <online|offline|busy>", c.status},
		"move":          {"move <lat> <lng> <address>", c.move},
		"orders":        {"orders [all|available|active|completed]", c.orders},
		"order":         {"order <#|id>", c.order},
		"accept":        {"accept <#|id>", c.accept},
		"advance":       {"advance <#|id>", c.advance},
		"decline":       {"decline <#|id>", c.decline},
		"trip":          {"trip [start <lat> <lng> <address>|end <lat> <lng> <address>|distance <km>|attach <#|id>]", c.trip},
		"trips":         {"trips", c.trips},
		"notifications": {"notifications", c.notifications},
		"notify":        {"notify <info|success|warning|error> <title>|<message>", c.notify},
		"read":          {"read <#|id|all>", c.read},
		"sos":           {"sos", c.sos},
		"issue":         {"issue <description>", c.issue},
		"earnings":      {"earnings", c.earnings},
		"dashboard":     {"dashboard", c.dashboard},
		"say":           {"say <utterance>", c.say},
		"quit":          {"quit", c.quit},
	}
	c.commands["exit"] = c.commands["quit"]

	return c
}

// Run reads commands from in until EOF, quit or context cancellation.
// Command failures are printed and do not stop the loop. On cancellation Run
// returns the context error without waiting for the pending read.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines, scanErr := scanLines(ctx, in)
	c.print(prompt)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}

			err := c.Execute(ctx, line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				c.logger.DebugContext(ctx, "Console command failed", "error", err)
				c.printf("error: %v\n", err)
			}
			c.print(prompt)
		}
	}
}

// scanLines feeds lines from in to an unbuffered channel. The channel is
// closed at EOF, after which the scanner error (possibly nil) is sent.
// A reader blocked on input keeps the goroutine alive until it returns.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(scanErr)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		close(lines)
		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

// Execute runs a single command line.
func (c *Console) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, args, _ := strings.Cut(line, " ")
	cmd, ok := c.commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown command %q, type help", name)
	}
	return cmd.run(ctx, strings.TrimSpace(args))
}

func (c *Console) help(_ context.Context, _ string) error {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		if name != "exit" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		c.printf("  %s\n", c.commands[name].usage)
	}
	return nil
}

func (c *Console) say(ctx context.Context, args string) error {
	reply, err := c.voice.Handle(ctx, args)
	if err != nil {
		return err
	}
	c.printf("[%s] %s\n", reply.Token, reply.Message)
	return nil
}

func (c *Console) quit(_ context.Context, _ string) error {
	c.print("bye\n")
	return ErrQuit
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
