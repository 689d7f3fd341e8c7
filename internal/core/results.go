package core

// DumpResult summarizes a dump.
type DumpResult struct {
	Sources   []string `json:"sources"`
	Documents int      `json:"documents"`
}

// EmptyResult reports whether a directory is empty.
type EmptyResult struct {
	Path  string `json:"path"`
	Empty bool   `json:"empty"`
}

// ConfigResult is the resolved configuration.
type ConfigResult struct {
	ConfigPath string `json:"configPath"`
	Limit      int    `json:"limit"`
	Dumper     string `json:"dumper"`
	Format     string `json:"format"`
	Color      bool   `json:"color"`
}
