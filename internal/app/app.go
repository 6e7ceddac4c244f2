// Package app wires the easylog components together: configuration,
// logging, notifications, open documents and the action dispatcher with
// the debug-log handler registered.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dshills/easylog/internal/config"
	"github.com/dshills/easylog/internal/dispatcher"
	"github.com/dshills/easylog/internal/dispatcher/execctx"
	"github.com/dshills/easylog/internal/dispatcher/handler"
	"github.com/dshills/easylog/internal/dispatcher/handlers/debuglog"
	"github.com/dshills/easylog/internal/easylog"
	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/dshills/easylog/internal/input"
)

// invocationVar is the input context variable carrying the invocation id.
const invocationVar = "invocation"

// Application is the central coordinator for easylog components.
type Application struct {
	// mu serializes command runs; the dispatcher holds one engine at a time.
	mu sync.Mutex

	config     *config.Config
	logger     *Logger
	notifier   execctx.NotifierInterface
	dispatcher *dispatcher.Dispatcher
	documents  *DocumentManager

	opts Options
}

// Options configures the application.
type Options struct {
	// Config supplies settings. Defaults to config.Default().
	Config *config.Config

	// Logger overrides the logger built from the config.
	Logger *Logger

	// Notifier overrides the terminal notifier on stderr.
	Notifier execctx.NotifierInterface
}

// Request describes one command invocation.
type Request struct {
	// Path is the document to operate on. Empty means no active editor.
	Path string

	// Anchor and Head are the 0-based selection ends. Equal points mean a
	// plain cursor.
	Anchor buffer.Point
	Head   buffer.Point

	// LanguageID overrides the language detected from the path.
	LanguageID string

	// DryRun computes the result without editing the document.
	DryRun bool

	// Source records where the request came from.
	Source input.ActionSource
}

// Cursor returns a request for a plain cursor at point.
func Cursor(path string, point buffer.Point) Request {
	return Request{Path: path, Anchor: point, Head: point}
}

// Outcome reports the result of a command.
type Outcome struct {
	Invocation    string
	Target        string
	Mode          string
	LanguageID    string
	Directive     easylog.Directive
	Content       string
	Changed       bool
	Notifications []Notification
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	app.config = app.opts.Config
	if app.config == nil {
		app.config = config.Default()
	}
	if err := app.config.Validate(); err != nil {
		return NewOperationError("load", "config", err)
	}

	app.logger = app.opts.Logger
	if app.logger == nil {
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(app.config.Logging().Level)
		app.logger = NewLogger(cfg)
	}

	app.notifier = app.opts.Notifier
	if app.notifier == nil {
		app.notifier = NewTerminalNotifier(os.Stderr, app.config.Notify().Color)
	}

	app.documents = NewDocumentManager(app.config.LanguageIDForPath)

	app.dispatcher = dispatcher.NewWithDefaults()
	app.dispatcher.RegisterNamespace(debuglog.Namespace, debuglog.NewHandler())
	app.dispatcher.RegisterPreHook(dispatcher.PreDispatchFunc(app.logDispatch))
	app.dispatcher.RegisterPostHook(dispatcher.PostDispatchFunc(app.logResult))

	app.logger.WithComponent("app").Debug("initialized (config=%q)", app.config.Source())
	return nil
}

// Config returns the application configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Log runs the debug-log command for req.
func (app *Application) Log(ctx context.Context, req Request) (Outcome, error) {
	return app.run(ctx, debuglog.ActionLog, req)
}

// Resolve reports what Log would insert without editing.
func (app *Application) Resolve(ctx context.Context, req Request) (Outcome, error) {
	return app.run(ctx, debuglog.ActionResolve, req)
}

// Save writes the open document at path back to disk. Unchanged
// documents are not rewritten.
func (app *Application) Save(path string) error {
	doc, ok := app.documents.Get(path)
	if !ok {
		return NewOperationError("save", path, ErrDocumentNotFound)
	}
	if !doc.IsModified() {
		return nil
	}
	if err := doc.Save(); err != nil {
		return err
	}
	app.logger.WithComponent("app").WithField("path", doc.Path).Info("saved")
	return nil
}

func (app *Application) run(ctx context.Context, action string, req Request) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	_, id := app.logger.WithInvocation()
	out := Outcome{Invocation: id}

	inputCtx := input.NewContext()
	inputCtx.Variables[invocationVar] = id

	var doc *Document
	if req.Path != "" {
		var err error
		doc, err = app.documents.Open(req.Path)
		if err != nil {
			return out, err
		}
		doc.Select(req.Anchor, req.Head)

		inputCtx.FilePath = doc.Path
		inputCtx.FileType = doc.LanguageID
		inputCtx.IsReadOnly = doc.ReadOnly
		app.dispatcher.SetEngine(doc.Buffer)
		app.dispatcher.SetCursors(doc.Cursors)
	} else {
		app.dispatcher.SetEngine(nil)
		app.dispatcher.SetCursors(nil)
	}
	if req.LanguageID != "" {
		inputCtx.FileType = req.LanguageID
	}
	out.LanguageID = inputCtx.FileType

	recorder := NewRecordingNotifier()
	app.dispatcher.SetNotifier(teeNotifier{app.notifier, recorder})

	revision := buffer.RevisionID(0)
	if doc != nil {
		revision = doc.Buffer.RevisionID()
	}

	result := app.dispatcher.DispatchWithContext(input.Action{
		Name:   action,
		Source: req.Source,
	}.WithExtra("dryRun", req.DryRun), inputCtx)

	out.Notifications = recorder.Notifications()
	if doc != nil {
		out.Content = doc.Content()
		out.Changed = doc.Buffer.RevisionID() != revision
	}

	if result.IsError() {
		return out, NewOperationError(action, req.Path, fmt.Errorf("%w: %w", ErrCommandFailed, result.Error))
	}

	if v, ok := result.GetData(debuglog.DataDirective); ok {
		out.Directive, _ = v.(easylog.Directive)
	}
	out.Target = result.GetDataString(debuglog.DataTarget)
	out.Mode = result.GetDataString(debuglog.DataMode)
	return out, nil
}

func (app *Application) invocationLogger(ctx *execctx.ExecutionContext) *Logger {
	l := app.logger.WithComponent("dispatcher")
	if ctx.Input != nil {
		if id := ctx.Input.Variables[invocationVar]; id != "" {
			l = l.WithField(invocationVar, id)
		}
	}
	return l
}

func (app *Application) logDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	app.invocationLogger(ctx).WithFields(map[string]any{
		"action":   action.Name,
		"source":   action.Source,
		"language": ctx.FileType,
		"dryRun":   ctx.DryRun,
	}).Debug("dispatch")
	return true
}

func (app *Application) logResult(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	l := app.invocationLogger(ctx).WithFields(map[string]any{
		"action": action.Name,
		"status": result.Status,
	})
	if !result.IsOK() {
		l.Warn("rejected: %v", result.Error)
		return
	}
	l.WithField("target", result.GetDataString(debuglog.DataTarget)).Info("done")
}
