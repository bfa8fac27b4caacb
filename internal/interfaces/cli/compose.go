package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/starpick-admin/internal/domain/fixture"
	"github.com/riskibarqy/starpick-admin/internal/domain/player"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

const composeHelp = `l list candidates | /term filter by name or position | / clear filter
+ID tag player | -ID untag player | v show selection | d show payload
s submit | h help | q quit`

// promptFixture lists the upcoming fixtures and reads the chosen id.
func (c *CLI) promptFixture(scanner *bufio.Scanner, upcoming []fixture.Fixture) (int64, error) {
	if len(upcoming) == 0 {
		return 0, fmt.Errorf("%w: no upcoming fixtures", usecase.ErrNotFound)
	}
	rows := make([][]string, 0, len(upcoming))
	for _, f := range upcoming {
		rows = append(rows, fixtureRow(f))
	}
	w, unlock := c.stdout()
	fmt.Fprintln(w, "Upcoming fixtures")
	err := writeTable(w, fixtureHeader, rows)
	fmt.Fprint(w, "fixture id> ")
	unlock()
	if err != nil {
		return 0, err
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, fmt.Errorf("%w: no fixture chosen", usecase.ErrInvalidInput)
	}
	return parseID(scanner.Text(), "fixture id")
}

// compose runs the tagging loop for f until the batch is created, q or EOF.
// A rejected submission keeps the selection so it can be edited and sent
// again.
func (c *CLI) compose(ctx context.Context, scanner *bufio.Scanner, f fixture.Fixture) error {
	composer := c.svc.Composer
	search := ""
	c.printf("%s\n%s\n", f.Title(), composeHelp)
	c.renderCandidates(search)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "q":
			return nil
		case line == "h":
			c.printf("%s\n", composeHelp)
		case line == "l":
			c.renderCandidates(search)
		case line == "v":
			c.renderSelection()
		case line == "d":
			if err := c.printMatchPayload(); err != nil {
				c.printf("%v\n", err)
			}
		case strings.HasPrefix(line, "/"):
			search = strings.TrimSpace(strings.TrimPrefix(line, "/"))
			c.renderCandidates(search)
		case strings.HasPrefix(line, "+"), strings.HasPrefix(line, "-"):
			id, err := parseID(line[1:], "player id")
			if err != nil {
				c.printf("%v\n", err)
				continue
			}
			if line[0] == '+' {
				_, err = composer.Add(id)
			} else {
				_, err = composer.Remove(id)
			}
			if err != nil {
				c.printf("%v\n", err)
				continue
			}
			c.renderSelection()
		case line == "s":
			err := composer.Submit(ctx)
			switch {
			case err == nil:
				return c.open(ctx, "/matches", viewOptions{page: 1})
			case errors.Is(err, usecase.ErrUnauthorized):
				return err
			case errors.Is(err, usecase.ErrConflict):
				c.printf("Selection kept. Untag the conflicting players and submit again.\n")
				c.renderSelection()
			default:
				c.printFieldErrors(err)
				c.logger.DebugContext(ctx, "submit matches failed", "fixture_id", f.ID, "error", err)
			}
		default:
			c.printf("unknown key %q\n%s\n", line, composeHelp)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return ctx.Err()
}

func (c *CLI) renderCandidates(search string) {
	candidates := c.svc.Composer.Candidates(search)
	selected := make(map[int64]struct{})
	for _, p := range c.svc.Composer.Selected() {
		selected[p.ID] = struct{}{}
	}

	rows := make([][]string, 0, len(candidates))
	for _, p := range candidates {
		mark := ""
		if _, ok := selected[p.ID]; ok {
			mark = "*"
		}
		rows = append(rows, append([]string{mark}, candidateRow(p)...))
	}

	w, unlock := c.stdout()
	defer unlock()
	title := "Candidates"
	if search != "" {
		title += fmt.Sprintf(" (search: %q)", search)
	}
	fmt.Fprintln(w, title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No players found.")
		return
	}
	if err := writeTable(w, []string{"", "ID", "NAME", "POSITION", "TEAM"}, rows); err != nil {
		c.logger.Warn("render candidates failed", "error", err)
	}
}

func (c *CLI) renderSelection() {
	selected := c.svc.Composer.Selected()
	w, unlock := c.stdout()
	defer unlock()
	fmt.Fprintf(w, "Selected (%d), %s\n", len(selected), c.svc.Composer.State())
	for _, p := range selected {
		fmt.Fprintf(w, "  %d %s\n", p.ID, p.Name)
	}
}

func candidateRow(p player.Player) []string {
	return []string{itoa(p.ID), p.Name, orDash(p.Position), orDash(p.TeamName())}
}
