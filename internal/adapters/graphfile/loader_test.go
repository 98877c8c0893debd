package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ninjify/internal/adapters/graphfile"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const sampleGraph = `
version: "1"
variables:
  SHELL: /bin/bash
  CC: gcc
envVars:
  - PATH
exports:
  - name: PATH
    export: true
  - name: LANG
    export: false
makefiles:
  - Makefile
  - build/rules.mk
targets:
  - all
buildAll: false
nodes:
  all:
    phony: true
    deps: [out/foo.o, out/bar]
  out/foo.o:
    deps: [foo.c]
    commands:
      - cmd: gcc -c -o out/foo.o foo.c
  out/bar:
    deps: [foo.c]
    commands:
      - cmd: cp foo.c out/bar
        ignoreError: true
        echo: true
`

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.GraphFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(t *testing.T) *graphfile.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return graphfile.NewLoader(log)
}

func TestLoader_Load(t *testing.T) {
	graph, ev, err := newLoader(t).Load(writeGraph(t, sampleGraph))
	require.NoError(t, err)

	// foo.c is never declared as a node and must become an implicit leaf.
	assert.Equal(t, 4, graph.Len())
	require.Len(t, graph.Roots, 1)
	assert.False(t, graph.BuildAll)

	all := graph.Roots[0]
	assert.Equal(t, "all", all.Output.String())
	assert.True(t, all.IsPhony)
	require.Len(t, all.Deps, 2)

	obj := all.Deps[0]
	assert.Equal(t, "out/foo.o", obj.Output.String())
	require.Len(t, obj.Commands, 1)
	assert.Equal(t, "gcc -c -o out/foo.o foo.c", obj.Commands[0].Cmd)
	assert.False(t, obj.Commands[0].IgnoreError)

	bar := all.Deps[1]
	require.Len(t, bar.Commands, 1)
	assert.True(t, bar.Commands[0].IgnoreError)
	assert.True(t, bar.Commands[0].Echo)

	// Both consumers of foo.c must share one node, not hold copies.
	require.Len(t, bar.Deps, 1)
	assert.Same(t, obj.Deps[0], bar.Deps[0])
	leaf := obj.Deps[0]
	assert.Empty(t, leaf.Commands)
	assert.False(t, leaf.IsPhony)

	assert.Equal(t, "/bin/bash", ev.EvalVar("SHELL"))
	assert.Equal(t, "", ev.EvalVar("UNDEFINED"))
	assert.Equal(t, []string{"PATH"}, ev.UsedEnvVars())
	assert.Equal(t, []domain.Export{
		{Name: "PATH", Export: true},
		{Name: "LANG", Export: false},
	}, ev.Exports())
	assert.Equal(t, []string{"Makefile", "build/rules.mk"}, ev.Makefiles())
}

func TestLoader_OrderOnlyDeps(t *testing.T) {
	content := `
version: "1"
targets: [out/foo.o]
nodes:
  out/foo.o:
    deps: [foo.c]
    orderOnly: [out/gen.h, foo.c]
    commands:
      - cmd: gcc -c -o out/foo.o foo.c
  out/gen.h:
    commands:
      - cmd: touch out/gen.h
`
	graph, _, err := newLoader(t).Load(writeGraph(t, content))
	require.NoError(t, err)

	require.Len(t, graph.Roots, 1)
	obj := graph.Roots[0]
	require.Len(t, obj.OrderOnlys, 2)
	assert.Equal(t, "out/gen.h", obj.OrderOnlys[0].Output.String())
	assert.Same(t, graph.Node(domain.NewInternedString("out/gen.h")), obj.OrderOnlys[0])

	// foo.c appears as a hard dep and an order-only dep; both edges must
	// reference the same node.
	require.Len(t, obj.Deps, 1)
	assert.Same(t, obj.Deps[0], obj.OrderOnlys[1])
}

func TestLoader_MissingFile(t *testing.T) {
	_, _, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, domain.ErrGraphReadFailed.Error())
}

func TestLoader_InvalidYAML(t *testing.T) {
	_, _, err := newLoader(t).Load(writeGraph(t, "nodes: [not, a, map]"))
	assert.ErrorContains(t, err, domain.ErrGraphParseFailed.Error())
}

func TestLoader_UnsupportedVersion(t *testing.T) {
	_, _, err := newLoader(t).Load(writeGraph(t, `version: "99"`))
	assert.ErrorIs(t, err, domain.ErrGraphVersion)
}

func TestLoader_UnknownTarget(t *testing.T) {
	content := `
targets: [missing]
nodes:
  all:
    phony: true
`
	_, _, err := newLoader(t).Load(writeGraph(t, content))
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestLoader_EmptyVariables(t *testing.T) {
	_, ev, err := newLoader(t).Load(writeGraph(t, `version: "1"`))
	require.NoError(t, err)
	assert.Equal(t, "", ev.EvalVar("SHELL"))
	assert.Empty(t, ev.Exports())
}
