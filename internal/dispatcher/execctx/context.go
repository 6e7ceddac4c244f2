// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/dshills/easylog/internal/engine/cursor"
	"github.com/dshills/easylog/internal/input"
)

// EngineInterface abstracts the text buffer for handlers.
type EngineInterface interface {
	// Text operations
	Insert(offset buffer.ByteOffset, text string) (buffer.EditResult, error)

	// Read operations
	Text() string
	TextRange(start, end buffer.ByteOffset) string
	LineText(line uint32) string
	Len() buffer.ByteOffset
	LineCount() uint32

	// Line operations
	LineStartOffset(line uint32) buffer.ByteOffset
	LineEndOffset(line uint32) buffer.ByteOffset

	// Position conversion
	OffsetToPoint(offset buffer.ByteOffset) buffer.Point
	PointToOffset(point buffer.Point) buffer.ByteOffset

	RevisionID() buffer.RevisionID
}

// CursorManagerInterface abstracts cursor management for handlers.
type CursorManagerInterface interface {
	Primary() cursor.Selection
	SetPrimary(sel cursor.Selection)
	HasSelection() bool
	MapInPlace(f func(sel cursor.Selection) cursor.Selection)
}

// NotifierInterface shows short messages to the user.
type NotifierInterface interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// ExecutionContext provides context for action execution.
// It contains references to the editor subsystems handlers need.
type ExecutionContext struct {
	// Engine provides access to the text buffer.
	Engine EngineInterface

	// Cursors provides access to cursor/selection state.
	Cursors CursorManagerInterface

	// Notifier shows messages to the user.
	Notifier NotifierInterface

	// Input provides the input context.
	Input *input.Context

	// Buffer metadata
	FilePath string
	FileType string

	// DryRun computes results without applying changes.
	DryRun bool
}

// New creates a new execution context.
func New() *ExecutionContext {
	return &ExecutionContext{}
}

// NewWithInputContext creates a new execution context from an input context.
func NewWithInputContext(inputCtx *input.Context) *ExecutionContext {
	ctx := New()
	ctx.Input = inputCtx

	if inputCtx != nil {
		ctx.FilePath = inputCtx.FilePath
		ctx.FileType = inputCtx.FileType
	}

	return ctx
}

// WithEngine returns the context with the engine set.
func (ctx *ExecutionContext) WithEngine(engine EngineInterface) *ExecutionContext {
	ctx.Engine = engine
	return ctx
}

// WithCursors returns the context with cursors set.
func (ctx *ExecutionContext) WithCursors(cursors CursorManagerInterface) *ExecutionContext {
	ctx.Cursors = cursors
	return ctx
}

// WithNotifier returns the context with the notifier set.
func (ctx *ExecutionContext) WithNotifier(n NotifierInterface) *ExecutionContext {
	ctx.Notifier = n
	return ctx
}

// WithDryRun returns the context with dry run mode set.
func (ctx *ExecutionContext) WithDryRun(dryRun bool) *ExecutionContext {
	ctx.DryRun = dryRun
	return ctx
}

// HasSelection returns true if the primary selection has extent.
func (ctx *ExecutionContext) HasSelection() bool {
	if ctx.Cursors == nil {
		return false
	}
	return ctx.Cursors.HasSelection()
}

// IsReadOnly returns true if the document is read-only.
func (ctx *ExecutionContext) IsReadOnly() bool {
	if ctx.Input != nil {
		return ctx.Input.IsReadOnly
	}
	return false
}

// Validate checks that the context can be read from.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Engine == nil {
		return ErrMissingEngine
	}
	if ctx.Cursors == nil {
		return ErrMissingCursors
	}
	return nil
}

// ValidateForEdit checks that the context can be edited.
// Read-only documents pass in dry-run mode.
func (ctx *ExecutionContext) ValidateForEdit() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.IsReadOnly() && !ctx.DryRun {
		return ErrReadOnly
	}
	return nil
}

// Notify routes msg to the notifier at the level's method.
// It is a no-op without a notifier.
func (ctx *ExecutionContext) Notify(level string, msg string) {
	if ctx.Notifier == nil || msg == "" {
		return
	}
	switch level {
	case "error":
		ctx.Notifier.Error(msg)
	case "warning":
		ctx.Notifier.Warn(msg)
	default:
		ctx.Notifier.Info(msg)
	}
}
