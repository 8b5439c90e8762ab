package gridimg

// RenderOptions holds configuration for rendering a puzzle document.
type RenderOptions struct {
	// Output location. Empty means the input file's directory.
	outputDir string

	// Base name for output files. Empty means the input file's stem.
	baseName string
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		outputDir: "",
		baseName:  "",
	}
}

// clone creates a copy of RenderOptions.
func (o RenderOptions) clone() RenderOptions {
	return RenderOptions{
		outputDir: o.outputDir,
		baseName:  o.baseName,
	}
}
