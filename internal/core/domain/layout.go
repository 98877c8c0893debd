package domain

const (
	// GraphFileName is the default name of the serialized evaluated graph.
	GraphFileName = "graph.yaml"

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the permission for the launcher script (rwxr-xr-x).
	ScriptPerm = 0o755
)
