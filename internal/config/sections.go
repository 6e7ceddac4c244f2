package config

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// DefaultInstructionLimit is the default Lua instruction budget.
const DefaultInstructionLimit = 1_000_000

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string
}

// NotifyConfig provides type-safe access to notification settings.
type NotifyConfig struct {
	// Color controls coloured notifications ("auto", "on", "off").
	Color string
}

// PluginsConfig provides type-safe access to Lua script settings.
type PluginsConfig struct {
	// Scripts lists Lua scripts run by the script command.
	Scripts []string

	// InstructionLimit bounds the instructions a script may execute.
	InstructionLimit int64
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	level := c.getStringOr("logging.level", "info")
	if !oneOf(level, "debug", "info", "warn", "warning", "error") {
		c.recordConfigError("logging.level", &SettingError{Path: "logging.level", Value: level, Err: ErrValidationFailed})
		level = "info"
	}
	return LoggingConfig{Level: level}
}

// Notify returns type-safe access to notification settings.
func (c *Config) Notify() NotifyConfig {
	color := c.getStringOr("notify.color", "auto")
	if !oneOf(color, "auto", "on", "off") {
		c.recordConfigError("notify.color", &SettingError{Path: "notify.color", Value: color, Err: ErrValidationFailed})
		color = "auto"
	}
	return NotifyConfig{Color: color}
}

// Plugins returns type-safe access to Lua script settings.
func (c *Config) Plugins() PluginsConfig {
	limit := c.getIntOr("plugins.instructionLimit", DefaultInstructionLimit)
	if limit < 0 {
		c.recordConfigError("plugins.instructionLimit", &SettingError{Path: "plugins.instructionLimit", Value: limit, Err: ErrValidationFailed})
		limit = DefaultInstructionLimit
	}
	return PluginsConfig{
		Scripts:          c.getStringSliceOr("plugins.scripts", nil),
		InstructionLimit: limit,
	}
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int64) int64 {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getStringSliceOr(path string, defaultValue []string) []string {
	v, err := c.GetStringSlice(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return append([]string(nil), defaultValue...)
	}
	return v
}
