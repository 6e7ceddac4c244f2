package input

// Context describes the document an action is invoked in.
type Context struct {
	// FileType is the language identifier of the current document
	// (javascript, typescript, python, ...).
	FileType string

	// FilePath is the path of the current document.
	FilePath string

	// IsReadOnly indicates whether the document is read-only.
	IsReadOnly bool

	// Variables holds context variables.
	Variables map[string]string
}

// NewContext creates a new input context with default values.
func NewContext() *Context {
	return &Context{
		Variables: make(map[string]string),
	}
}

