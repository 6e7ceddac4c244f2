package debuglog

import (
	"fmt"

	"github.com/dshills/easylog/internal/dispatcher/execctx"
	"github.com/dshills/easylog/internal/dispatcher/handler"
	"github.com/dshills/easylog/internal/easylog"
	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/dshills/easylog/internal/engine/cursor"
	"github.com/dshills/easylog/internal/input"
)

// Namespace is the action namespace served by Handler.
const Namespace = "debuglog"

// Action names.
const (
	ActionLog     = "debuglog.log"
	ActionResolve = "debuglog.resolve"
)

// Result data keys.
const (
	DataDirective = "directive"
	DataTarget    = "target"
	DataMode      = "mode"
)

// Handler handles debug-log actions.
type Handler struct{}

// NewHandler creates a new debug-log handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the debuglog namespace.
func (h *Handler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionLog, ActionResolve:
		return true
	}
	return false
}

// HandleAction processes a debug-log action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return reject(ctx, fmt.Errorf("%w: %w", easylog.ErrNoActiveEditor, err))
	}

	switch action.Name {
	case ActionLog:
		return h.log(ctx)
	case ActionResolve:
		return h.resolve(ctx)
	default:
		return handler.Errorf("unknown debuglog action: %s", action.Name)
	}
}

// plan reads the primary selection and computes the directive.
func (h *Handler) plan(ctx *execctx.ExecutionContext) (easylog.Directive, easylog.Source, error) {
	if err := easylog.CheckLanguage(ctx.FileType); err != nil {
		return easylog.Directive{}, easylog.Source{}, err
	}

	src, line := sourceAt(ctx)
	d, err := easylog.Plan(ctx.FileType, src, line)
	return d, src, err
}

// sourceAt builds the extraction source for the primary selection and the
// line to log after. The line is the line of the selection end; for a
// cursor it is the cursor's line.
func sourceAt(ctx *execctx.ExecutionContext) (easylog.Source, uint32) {
	engine := ctx.Engine
	sel := ctx.Cursors.Primary()
	if !ctx.HasSelection() {
		p := engine.OffsetToPoint(sel.Head)
		return easylog.CursorSource(engine.LineText(p.Line), int(p.Column)), p.Line
	}

	r := sel.Range()
	end := engine.OffsetToPoint(r.End)
	return easylog.SelectionSource(engine.TextRange(r.Start, r.End)), end.Line
}

func (h *Handler) log(ctx *execctx.ExecutionContext) handler.Result {
	d, src, err := h.plan(ctx)
	if err != nil {
		return reject(ctx, err)
	}

	result := handler.Success().
		WithData(DataDirective, d).
		WithData(DataTarget, d.Target).
		WithData(DataMode, src.Mode.String())

	if ctx.DryRun {
		return result
	}

	if err := ctx.ValidateForEdit(); err != nil {
		return reject(ctx, fmt.Errorf("%w: %w", easylog.ErrEditFailed, err))
	}

	offset := d.Offset(ctx.Engine)
	edit, err := ctx.Engine.Insert(offset, d.Text)
	if err != nil {
		return reject(ctx, fmt.Errorf("%w: %w", easylog.ErrEditFailed, err))
	}

	insertLen := edit.NewRange.Len()
	ctx.Cursors.MapInPlace(func(sel cursor.Selection) cursor.Selection {
		return cursor.TransformForInsertion(sel, offset, insertLen)
	})

	return result.
		WithEdit(handler.Edit{Range: buffer.NewRange(offset, offset), NewText: d.Text}).
		WithRedrawLines(affectedLines(ctx.Engine, edit)...).
		WithMessage(fmt.Sprintf("Logged %s", d.Target))
}

func (h *Handler) resolve(ctx *execctx.ExecutionContext) handler.Result {
	d, src, err := h.plan(ctx)
	if err != nil {
		return reject(ctx, err)
	}
	return handler.Success().
		WithData(DataDirective, d).
		WithData(DataTarget, d.Target).
		WithData(DataMode, src.Mode.String()).
		WithMessage(d.Target)
}

// reject notifies the user about err and returns it as the result.
func reject(ctx *execctx.ExecutionContext, err error) handler.Result {
	ctx.Notify(easylog.SeverityOf(err).String(), easylog.Message(err))
	return handler.Error(err)
}

func affectedLines(engine execctx.EngineInterface, edit buffer.EditResult) []uint32 {
	start := engine.OffsetToPoint(edit.NewRange.Start).Line
	end := engine.OffsetToPoint(edit.NewRange.End).Line
	lines := make([]uint32, 0, end-start+1)
	for line := start; line <= end; line++ {
		lines = append(lines, line)
	}
	return lines
}
