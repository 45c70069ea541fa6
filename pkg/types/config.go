package types

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// NotebookPath is the input notebook (.ipynb), read-only.
	NotebookPath string `json:"notebook_path" yaml:"notebook_path"`

	// OutputDir is the directory chart pages are written to. Created if
	// absent, including parents.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Manifest controls whether a manifest.yaml is written into OutputDir
	// alongside the chart pages.
	Manifest bool `json:"manifest" yaml:"manifest"`
}

// GalleryConfig holds settings for the gallery stage.
type GalleryConfig struct {
	// NotebookPath is the input notebook (.ipynb), read-only.
	NotebookPath string `json:"notebook_path" yaml:"notebook_path"`

	// OutputDir is the directory the index.html is written to. The chart
	// pages it references are expected at the same level.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
