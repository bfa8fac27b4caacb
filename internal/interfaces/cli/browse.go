package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

const browseHelp = `n next page | p previous page | g N go to page | /term search | / clear search
t ID toggle status | r refresh | h help | q quit`

func (c *CLI) runBrowse(ctx context.Context, args []string) error {
	fs := c.newFlagSet("browse")
	var opts viewOptions
	bindViewFlags(fs, &opts)
	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: browse takes exactly one list path", usecase.ErrInvalidInput)
	}

	v, ok, err := c.listFor(Resolve(positional[0]), opts)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a list", usecase.ErrInvalidInput, positional[0])
	}
	defer v.Close()
	c.Navigate(positional[0])

	if err := v.Open(ctx, opts.page, opts.search); err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			return err
		}
		c.logger.DebugContext(ctx, "initial load failed", "path", positional[0], "error", err)
	}
	c.render(v)
	return c.browse(ctx, v)
}

// browse reads navigation commands from stdin until q or EOF. Searches are
// debounced; the list is rendered again once the search load settles.
func (c *CLI) browse(ctx context.Context, v lister) error {
	var (
		pending  <-chan struct{}
		rendered chan struct{}
	)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var err error
		switch cmd, arg, _ := strings.Cut(line, " "); {
		case cmd == "q":
			return nil
		case cmd == "h":
			c.printf("%s\n", browseHelp)
			continue
		case cmd == "n":
			err = v.Next(ctx)
		case cmd == "p":
			err = v.Prev(ctx)
		case cmd == "g":
			n, convErr := strconv.Atoi(strings.TrimSpace(arg))
			if convErr != nil {
				c.printf("g needs a page number\n")
				continue
			}
			err = v.GoTo(ctx, n)
		case cmd == "r":
			err = v.Refetch(ctx)
		case cmd == "t":
			id, idErr := parseID(arg, "id")
			if idErr != nil {
				c.printf("%v\n", idErr)
				continue
			}
			err = v.Toggle(ctx, id)
		case strings.HasPrefix(line, "/"):
			settled := v.Settled()
			v.SetSearch(strings.TrimPrefix(line, "/"))
			if settled != pending {
				pending, rendered = settled, make(chan struct{})
				go func(done chan struct{}) {
					defer close(done)
					select {
					case <-settled:
						c.render(v)
					case <-ctx.Done():
					}
				}(rendered)
			}
			continue
		default:
			c.printf("unknown key %q\n%s\n", line, browseHelp)
			continue
		}

		switch {
		case errors.Is(err, usecase.ErrUnauthorized):
			return err
		case errors.Is(err, usecase.ErrPageOutOfRange):
			c.printf("%v\n", err)
			continue
		case err != nil:
			// Failed loads keep the previous page; toasts already reported it.
			c.logger.DebugContext(ctx, "browse action failed", "action", line, "error", err)
		}
		c.render(v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if rendered != nil {
		<-rendered
	}
	return ctx.Err()
}

func (c *CLI) render(v lister) {
	w, unlock := c.stdout()
	defer unlock()
	if err := v.Render(w); err != nil {
		c.logger.Warn("render failed", "error", err)
	}
}
