package chatdocx

// Config holds all configuration for a conversion.
type Config struct {
	Normalize NormalizeRules `yaml:"normalize"`
	Style     RenderStyle    `yaml:"style"`
}

// NormalizeRules controls what the Normalizer strips from the input.
type NormalizeRules struct {
	// JunkMarkers are literal strings identifying UI chrome. The nearest
	// element containing any of them is removed entirely.
	JunkMarkers []string `yaml:"junkMarkers"`

	// PassThroughTags are wrapper elements that are unwrapped, leaving
	// their children in place.
	PassThroughTags []string `yaml:"passThroughTags"`

	// ReservedAttrPrefix marks framework-injected attributes to strip.
	// Empty disables attribute stripping.
	ReservedAttrPrefix string `yaml:"reservedAttrPrefix"`
}

// RenderStyle controls the look of rendered documents.
type RenderStyle struct {
	BodyFont      string `yaml:"bodyFont"`
	CodeFont      string `yaml:"codeFont"`
	CodeFontSize  int    `yaml:"codeFontSize"`  // points
	CodeShading   string `yaml:"codeShading"`   // hex RGB, e.g. "F0F0F0"
	HeaderShading string `yaml:"headerShading"` // hex RGB; empty = none
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Normalize: DefaultNormalizeRules(),
		Style:     DefaultRenderStyle(),
	}
}

// DefaultNormalizeRules returns rules tuned for HTML copied from chat
// assistants built on Angular.
func DefaultNormalizeRules() NormalizeRules {
	return NormalizeRules{
		JunkMarkers: []string{
			"IGNORE_WHEN_COPYING",
			"content_copy",
			"Use code with caution",
		},
		PassThroughTags: []string{
			"span",
			"ms-cmark-node",
			"ms-text-chunk",
			"ms-prompt-chunk",
		},
		ReservedAttrPrefix: "_ng",
	}
}

// DefaultRenderStyle returns the default document style.
func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		BodyFont:     "Arial",
		CodeFont:     "Courier New",
		CodeFontSize: 10,
		CodeShading:  "F0F0F0",
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Style.CodeFontSize < 0 {
		return Errorf(EINVALID, "code font size must not be negative")
	}
	for _, color := range []string{c.Style.CodeShading, c.Style.HeaderShading} {
		if color != "" && !isHexColor(color) {
			return Errorf(EINVALID, "invalid shading color %q: want 6 hex digits", color)
		}
	}
	for _, tag := range c.Normalize.PassThroughTags {
		if _, ok := ParseBlockTag(tag); ok {
			return Errorf(EINVALID, "block tag %q cannot be a pass-through tag", tag)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
