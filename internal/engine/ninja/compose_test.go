package ninja

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ninjify/internal/core/domain"
)

func cmds(texts ...string) []*domain.Command {
	out := make([]*domain.Command, len(texts))
	for i, c := range texts {
		out[i] = &domain.Command{Cmd: c}
	}
	return out
}

func TestComposeRecipe(t *testing.T) {
	t.Run("single command stays bare", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		r := g.composeRecipe(cmds("gcc -c foo.c"))
		assert.Equal(t, "gcc -c foo.c", r.cmd)
		assert.Equal(t, "build $out", r.description)
		assert.False(t, r.useLocalPool)
	})

	t.Run("multiple commands get subshells and && joiner", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		r := g.composeRecipe(cmds("mkdir -p out", "cp a out/a"))
		assert.Equal(t, "(mkdir -p out) && (cp a out/a)", r.cmd)
	})

	t.Run("command already in parens is not rewrapped", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		r := g.composeRecipe(cmds("(cd out && ls)", "cp a b"))
		assert.Equal(t, "(cd out && ls) && (cp a b)", r.cmd)
	})

	t.Run("ignore error picks joiner for the following command", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		commands := cmds("rm -f out", "touch out", "cp out out2")
		commands[0].IgnoreError = true
		r := g.composeRecipe(commands)
		assert.Equal(t, "(rm -f out) ; (touch out) && (cp out out2)", r.cmd)
	})

	t.Run("trailing ignore error appends true", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		commands := cmds("rm -f out")
		commands[0].IgnoreError = true
		r := g.composeRecipe(commands)
		assert.Equal(t, "rm -f out ; true", r.cmd)
	})

	t.Run("echo becomes description and true placeholder", func(t *testing.T) {
		g := &Generator{cfg: Config{DetectDescriptions: true}}
		r := g.composeRecipe(cmds("echo Building foo", "gcc -c foo.c"))
		assert.Equal(t, "(true) && (gcc -c foo.c)", r.cmd)
		assert.Equal(t, "Building foo", r.description)
	})

	t.Run("only the first echo becomes the description", func(t *testing.T) {
		g := &Generator{cfg: Config{DetectDescriptions: true}}
		r := g.composeRecipe(cmds("echo one", "echo two"))
		assert.Equal(t, "(true) && (echo two)", r.cmd)
		assert.Equal(t, "one", r.description)
	})

	t.Run("explicitly echoed command stays a step", func(t *testing.T) {
		g := &Generator{cfg: Config{DetectDescriptions: true}}
		commands := cmds("echo Building foo")
		commands[0].Echo = true
		r := g.composeRecipe(commands)
		assert.Equal(t, "echo Building foo", r.cmd)
		assert.Equal(t, "build $out", r.description)
	})

	t.Run("detection disabled keeps echo", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		r := g.composeRecipe(cmds("echo Building foo"))
		assert.Equal(t, "echo Building foo", r.cmd)
	})

	t.Run("leading whitespace is trimmed before subshell check", func(t *testing.T) {
		g := &Generator{cfg: Config{}}
		r := g.composeRecipe(cmds("  (cd out && ls)", "cp a b"))
		assert.Equal(t, "(cd out && ls) && (cp a b)", r.cmd)
	})
}

func TestComposeRecipeWrapper(t *testing.T) {
	compile := "prebuilts/clang/host/bin/clang -MD -c -o out/foo.o foo.c"

	t.Run("matching compile gets the wrapper spliced", func(t *testing.T) {
		g := &Generator{cfg: Config{WrapperDir: "/opt/wrap"}, wrapper: "/opt/wrap/gomacc "}
		r := g.composeRecipe(cmds(compile))
		assert.Equal(t, "/opt/wrap/gomacc "+compile, r.cmd)
		assert.False(t, r.useLocalPool)
	})

	t.Run("non compile uses the local pool", func(t *testing.T) {
		g := &Generator{cfg: Config{WrapperDir: "/opt/wrap"}, wrapper: "/opt/wrap/gomacc "}
		r := g.composeRecipe(cmds("cp a b"))
		assert.Equal(t, "cp a b", r.cmd)
		assert.True(t, r.useLocalPool)
	})
}

func TestWrapperInsertPos(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "gcc compile", in: "prebuilts/gcc/linux-x86/bin/gcc -MD -c -o a.o a.c", want: 0},
		{name: "clang compile", in: "prebuilts/clang/host/clang++ -c -o a.o a.cc", want: 0},
		{name: "behind ccache", in: "ccache prebuilts/gcc/bin/gcc -c -o a.o a.c", want: 7},
		{name: "no -c flag", in: "prebuilts/gcc/bin/gcc -o a a.c", want: -1},
		{name: "not under prebuilts", in: "/usr/bin/gcc -c -o a.o a.c", want: -1},
		{name: "unknown binary", in: "prebuilts/gcc/bin/ld -c -o a.o a.c", want: -1},
		{name: "no arguments", in: "prebuilts/gcc/bin/gcc", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapperInsertPos(tt.in))
		})
	}
}
