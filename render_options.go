package mdr

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8           bool
	softWrap       bool
	lineNumbers    bool
	codeBackground bool
	forceColor     bool
}

func defaultRenderConfig() renderConfig {
	return renderConfig{lineNumbers: true}
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap enables soft wrapping for long words.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithLineNumbers enables or disables code block line numbers. They
// are on unless disabled.
func WithLineNumbers(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.lineNumbers = enabled
	}
}

// WithCodeBackground draws code line numbers on a filled background.
func WithCodeBackground(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.codeBackground = enabled
	}
}

// WithForceColor emits styled output even when the destination is not
// a terminal.
func WithForceColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.forceColor = enabled
	}
}
