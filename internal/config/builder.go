package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize selects an empty board of the given size.
func (b *ConfigBuilder) WithBoardSize(size int) *ConfigBuilder {
	b.cfg.Source = EmptyBoard
	b.cfg.BoardSize = size
	return b
}

// WithLayout selects a board described by a layout string.
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Source = LayoutBoard
	b.cfg.Layout = layout
	return b
}

// WithFEN selects a standard board described by a FEN string.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Source = FENBoard
	b.cfg.FEN = fen
	return b
}

// WithWorkers sets the number of query workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStopOnFail stops processing after the first failed query.
func (b *ConfigBuilder) WithStopOnFail(enabled bool) *ConfigBuilder {
	b.cfg.StopOnFail = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithRender draws the board before the results.
func (b *ConfigBuilder) WithRender(enabled bool, glyphs GlyphSet) *ConfigBuilder {
	b.cfg.RenderBoard = enabled
	b.cfg.Glyphs = glyphs
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
