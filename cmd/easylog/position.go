package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/easylog/internal/app"
	"github.com/dshills/easylog/internal/engine/buffer"
)

// ErrBadPosition indicates malformed position flags.
var ErrBadPosition = errors.New("invalid position")

// positionFlags are the flags shared by log and resolve.
type positionFlags struct {
	line      int
	col       int
	selection string
	lang      string
	dryRun    bool
}

func (p *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&p.line, "line", "l", 0, "1-based line of the cursor")
	cmd.Flags().IntVarP(&p.col, "col", "C", 1, "1-based column of the cursor")
	cmd.Flags().StringVarP(&p.selection, "select", "s", "", "selection as LINE:COL-LINE:COL (1-based)")
	cmd.Flags().StringVar(&p.lang, "lang", "", "language id override (javascript, typescript, ...)")
}

// request builds the command request for path.
func (p *positionFlags) request(path string) (app.Request, error) {
	req := app.Request{Path: path, LanguageID: p.lang, DryRun: p.dryRun}

	switch {
	case p.selection != "" && p.line != 0:
		return req, fmt.Errorf("%w: --select cannot be combined with --line", ErrBadPosition)
	case p.selection != "":
		anchor, head, err := parseSelection(p.selection)
		if err != nil {
			return req, err
		}
		req.Anchor, req.Head = anchor, head
	case p.line != 0:
		point, err := toPoint(p.line, p.col)
		if err != nil {
			return req, err
		}
		req.Anchor, req.Head = point, point
	default:
		return req, fmt.Errorf("%w: one of --line or --select is required", ErrBadPosition)
	}
	return req, nil
}

// parseSelection parses "L:C-L:C" into 0-based anchor and head points.
func parseSelection(s string) (anchor, head buffer.Point, err error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return anchor, head, fmt.Errorf("%w: selection %q must be LINE:COL-LINE:COL", ErrBadPosition, s)
	}
	if anchor, err = parsePoint(from); err != nil {
		return anchor, head, err
	}
	if head, err = parsePoint(to); err != nil {
		return anchor, head, err
	}
	return anchor, head, nil
}

// parsePoint parses a 1-based "LINE:COL" into a 0-based point.
func parsePoint(s string) (buffer.Point, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return buffer.Point{}, fmt.Errorf("%w: %q must be LINE:COL", ErrBadPosition, s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return buffer.Point{}, fmt.Errorf("%w: line %q: %v", ErrBadPosition, lineStr, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return buffer.Point{}, fmt.Errorf("%w: column %q: %v", ErrBadPosition, colStr, err)
	}
	return toPoint(line, col)
}

func toPoint(line, col int) (buffer.Point, error) {
	if line < 1 || col < 1 {
		return buffer.Point{}, fmt.Errorf("%w: line and column are 1-based (got %d:%d)", ErrBadPosition, line, col)
	}
	return buffer.Point{Line: uint32(line - 1), Column: uint32(col - 1)}, nil
}
