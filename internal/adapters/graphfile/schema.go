package graphfile

// File represents the structure of a serialized evaluated graph, the
// hand-off format of the makefile front end. All variable references are
// already expanded; the file carries only literal strings.
type File struct {
	Version   string            `yaml:"version"`
	Variables map[string]string `yaml:"variables"`
	// EnvVars lists the environment variable names the evaluator recorded
	// as referenced during evaluation. Their values live in Variables.
	EnvVars   []string            `yaml:"envVars"`
	Exports   []ExportDTO         `yaml:"exports"`
	Makefiles []string            `yaml:"makefiles"`
	Targets   []string            `yaml:"targets"`
	BuildAll  bool                `yaml:"buildAll"`
	Nodes     map[string]*NodeDTO `yaml:"nodes"`
}

// ExportDTO is one export or unset directive for the launcher script.
type ExportDTO struct {
	Name   string `yaml:"name"`
	Export bool   `yaml:"export"`
}

// NodeDTO represents one target definition in the graph file.
type NodeDTO struct {
	Phony     bool         `yaml:"phony"`
	Deps      []string     `yaml:"deps"`
	OrderOnly []string     `yaml:"orderOnly"`
	Commands  []CommandDTO `yaml:"commands"`
}

// CommandDTO represents a single recipe line.
type CommandDTO struct {
	Cmd         string `yaml:"cmd"`
	IgnoreError bool   `yaml:"ignoreError"`
	Echo        bool   `yaml:"echo"`
}
