package config

import (
	"path/filepath"
	"strings"
)

// defaultLanguages maps file extensions to language ids.
var defaultLanguages = map[string]string{
	"js":    "javascript",
	"mjs":   "javascript",
	"cjs":   "javascript",
	"jsx":   "javascriptreact",
	"ts":    "typescript",
	"mts":   "typescript",
	"cts":   "typescript",
	"tsx":   "typescriptreact",
	"vue":   "vue",
	"go":    "go",
	"rs":    "rust",
	"py":    "python",
	"c":     "c",
	"h":     "c",
	"cpp":   "cpp",
	"java":  "java",
	"rb":    "ruby",
	"php":   "php",
	"swift": "swift",
	"kt":    "kotlin",
	"lua":   "lua",
	"sh":    "shellscript",
	"json":  "json",
	"yaml":  "yaml",
	"yml":   "yaml",
	"html":  "html",
	"css":   "css",
	"md":    "markdown",
	"sql":   "sql",
	"cs":    "csharp",
	"dart":  "dart",
}

// Languages returns the extension to language id table.
func (c *Config) Languages() map[string]string {
	m, err := c.GetStringMap("languages")
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError("languages", err)
		}
		m = make(map[string]string, len(defaultLanguages))
		for ext, id := range defaultLanguages {
			m[ext] = id
		}
	}
	return m
}

// LanguageIDForPath returns the language id for a file path based on its
// extension, or "plaintext" for unknown extensions.
func (c *Config) LanguageIDForPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "plaintext"
	}
	if id, ok := c.Languages()[ext]; ok && id != "" {
		return id
	}
	return "plaintext"
}
