package manifest

// Config holds the repository layout conventions for a brick.
type Config struct {
	// File is the manifest filename expected at the repository root.
	File string `mapstructure:"file" default:"BIOBRICK.yaml"`
	// Dir is the asset directory name under the repository root.
	Dir string `mapstructure:"dir" default:"brick"`
	// DefaultRoot is the repository root used when no path argument is given.
	DefaultRoot string `mapstructure:"default_root" default:"/github/workspace"`
}
