package config

// RenderConfig controls how messages are built and printed
type RenderConfig struct {
	// DefaultColor is a palette name or color literal applied to embeds without a color
	DefaultColor  string `json:"default_color,omitempty" yaml:"default_color,omitempty" validate:"omitempty,colorname"`
	DefaultFooter string `json:"default_footer,omitempty" yaml:"default_footer,omitempty" validate:"max=2048"`
	StrictLimits  bool   `json:"strict_limits" yaml:"strict_limits"`
	Pretty        bool   `json:"pretty" yaml:"pretty"`
	MaxFileSizeMB int    `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"omitempty,min=1,max=500"`
}

// NewDefaultRenderConfig creates default render configuration
func NewDefaultRenderConfig() RenderConfig {
	return RenderConfig{
		DefaultColor:  DefaultRenderColor,
		StrictLimits:  DefaultRenderStrictLimits,
		Pretty:        DefaultRenderPretty,
		MaxFileSizeMB: DefaultMaxFileSizeMB,
	}
}

// MaxFileSizeBytes returns the attachment size cap in bytes
func (rc RenderConfig) MaxFileSizeBytes() int64 {
	size := rc.MaxFileSizeMB
	if size <= 0 {
		size = DefaultMaxFileSizeMB
	}
	return int64(size) * 1024 * 1024
}
