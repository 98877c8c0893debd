package ninja

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"

	"go.trai.ch/ninjify/internal/build"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Command lines beyond this size go through a response file instead of
// being embedded in the rule. Linux tolerates ~130kB, macOS ~250kB.
const rspThreshold = 100 * 1000

// localPoolName is the depth-limited pool for nodes that must not compete
// with wrapper-pool compilations for job slots.
const localPoolName = "local_pool"

// Config is the immutable generator configuration.
type Config struct {
	// Dir is the directory the output files are written to.
	Dir string

	// Suffix distinguishes parallel generations ("-arm" gives
	// build-arm.ninja, ninja-arm.sh and .ninjify_env-arm).
	Suffix string

	// WrapperDir enables compiler-wrapper mode: the wrapper binary under
	// this directory is spliced into matching compile commands.
	WrapperDir string

	// Jobs is the depth of the local pool in wrapper mode.
	Jobs int

	// DetectDescriptions turns leading plain-echo commands into rule
	// descriptions instead of executed steps.
	DetectDescriptions bool

	// EmitRegenRules adds the self-regeneration rules to the output.
	EmitRegenRules bool

	// FailOnEnvChange makes the environment-check rule fail the build
	// when a tracked variable changed; otherwise the snapshot is
	// silently refreshed.
	FailOnEnvChange bool

	// OrigArgs is the original command line, re-run by the regeneration rule.
	OrigArgs string
}

// NinjaFile returns the path of the generated ninja file.
func (c Config) NinjaFile() string {
	return c.outDir() + "/build" + c.Suffix + ".ninja"
}

// ScriptFile returns the path of the generated launcher script.
func (c Config) ScriptFile() string {
	return c.outDir() + "/ninja" + c.Suffix + ".sh"
}

// EnvFile returns the path of the environment snapshot file.
func (c Config) EnvFile() string {
	return c.outDir() + "/.ninjify_env" + c.Suffix
}

// StampFile returns the path of the generation stamp.
func (c Config) StampFile() string {
	return c.outDir() + "/.ninjify_stamp" + c.Suffix
}

func (c Config) outDir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

// writer wraps a bufio.Writer with a sticky error so stanza emission can
// stay free of per-line error checks. The first failure wins; every write
// after it is a no-op.
type writer struct {
	w   *bufio.Writer
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *writer) flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Generator renders one evaluated graph into the output files.
// It is single-use: a generation pass owns its visited set, short-name
// table and rule counter, and Generate must be called once.
type Generator struct {
	cfg    Config
	ev     ports.Evaluator
	logger ports.Logger

	shell   string
	wrapper string

	ruleID     int
	done       map[domain.InternedString]struct{}
	shortNames map[domain.InternedString]domain.InternedString

	// usedEnvs snapshots the referenced environment variables at
	// construction; envNames holds their sorted order.
	usedEnvs map[string]string
	envNames []string

	w *writer
}

// ambiguousShortName marks a final path component claimed by more than
// one target.
var ambiguousShortName = domain.NewInternedString("")

// NewGenerator creates a Generator for one generation pass. The
// environment snapshot is taken here, before any file is written.
func NewGenerator(cfg Config, ev ports.Evaluator, logger ports.Logger) *Generator {
	shell := ev.EvalVar("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	g := &Generator{
		cfg:        cfg,
		ev:         ev,
		logger:     logger,
		shell:      shell,
		done:       make(map[domain.InternedString]struct{}),
		shortNames: make(map[domain.InternedString]domain.InternedString),
		usedEnvs:   make(map[string]string),
	}
	if cfg.WrapperDir != "" {
		g.wrapper = cfg.WrapperDir + "/gomacc "
	}
	for _, name := range ev.UsedEnvVars() {
		g.usedEnvs[name] = ev.EvalVar(name)
	}
	g.envNames = make([]string, 0, len(g.usedEnvs))
	for name := range g.usedEnvs {
		g.envNames = append(g.envNames, name)
	}
	sort.Strings(g.envNames)
	return g
}

// Generate writes the environment snapshot, the ninja file and the
// launcher script, in that order. Any write failure is fatal and aborts
// the pass.
func (g *Generator) Generate(graph *domain.Graph) error {
	if err := g.writeEnvFile(); err != nil {
		return err
	}
	if err := g.writeNinja(graph); err != nil {
		return err
	}
	return g.writeScript()
}

func (g *Generator) writeNinja(graph *domain.Graph) error {
	f, err := os.Create(g.cfg.NinjaFile())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNinjaWriteFailed.Error()), "path", g.cfg.NinjaFile())
	}
	defer f.Close() //nolint:errcheck // Close error is caught by the explicit Close below

	g.w = &writer{w: bufio.NewWriter(f)}
	g.w.printf("# Generated by ninjify %s\n", build.Version)
	g.w.printf("\n")

	if len(g.envNames) > 0 {
		g.w.printf("# Environment variables used:\n")
		for _, name := range g.envNames {
			g.w.printf("# %s=%s\n", name, g.usedEnvs[name])
		}
		g.w.printf("\n")
	}

	if g.cfg.WrapperDir != "" {
		g.w.printf("pool %s\n", localPoolName)
		g.w.printf(" depth = %d\n\n", g.cfg.Jobs)
	}

	g.emitRegenRules()

	for _, node := range graph.Roots {
		g.emitNode(node)
	}

	if !graph.BuildAll {
		if len(graph.Roots) == 0 {
			return domain.ErrNoRootTargets
		}
		g.w.printf("\ndefault %s\n", EscapeTarget(graph.Roots[0].Output.String()))
	}

	g.w.printf("\n# shortcuts:\n")
	g.emitShortcuts()

	if err := g.w.flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNinjaWriteFailed.Error()), "path", g.cfg.NinjaFile())
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNinjaWriteFailed.Error()), "path", g.cfg.NinjaFile())
	}
	return nil
}

func (g *Generator) genRuleName() string {
	name := "rule" + strconv.Itoa(g.ruleID)
	g.ruleID++
	return name
}

// emitNode writes the rule and build stanzas for a previously unvisited
// node and recurses into its dependencies. Nodes already emitted through
// another parent are skipped, so every output name appears exactly once.
func (g *Generator) emitNode(node *domain.BuildNode) {
	if _, ok := g.done[node.Output]; ok {
		return
	}
	g.done[node.Output] = struct{}{}

	// A dangling leaf placeholder: no recipe, no prerequisites, not
	// declared phony. Invisible in the output.
	if len(node.Commands) == 0 &&
		len(node.Deps) == 0 && len(node.OrderOnlys) == 0 && !node.IsPhony {
		return
	}

	output := node.Output.String()
	if base := basename(output); base != output {
		short := domain.NewInternedString(base)
		if _, ok := g.shortNames[short]; ok {
			// Shortcuts are generated only for unique basenames.
			g.shortNames[short] = ambiguousShortName
		} else {
			g.shortNames[short] = node.Output
		}
	}

	ruleName := "phony"
	useLocalPool := false
	if len(node.Commands) > 0 {
		ruleName = g.genRuleName()
		g.w.printf("rule %s\n", ruleName)

		r := g.composeRecipe(node.Commands)
		useLocalPool = r.useLocalPool
		g.w.printf(" description = %s\n", r.description)

		cmd, depfile, hasDepfile := dependencyFile(r.cmd, g.logger)
		if hasDepfile {
			g.w.printf(" depfile = %s\n", depfile)
			g.w.printf(" deps = gcc\n")
		}

		if len(cmd) > rspThreshold {
			g.w.printf(" rspfile = $out.rsp\n")
			g.w.printf(" rspfile_content = %s\n", cmd)
			g.w.printf(" command = %s $out.rsp\n", g.shell)
		} else {
			g.w.printf(" command = %s -c \"%s\"\n", g.shell, EscapeShell(cmd))
		}
	}

	g.emitBuild(node, ruleName)
	if useLocalPool {
		g.w.printf(" pool = %s\n", localPoolName)
	}

	for _, d := range node.Deps {
		g.emitNode(d)
	}
	for _, d := range node.OrderOnlys {
		g.emitNode(d)
	}
}

func (g *Generator) emitBuild(node *domain.BuildNode, ruleName string) {
	g.w.printf("build %s: %s", EscapeTarget(node.Output.String()), ruleName)
	for _, d := range node.Deps {
		g.w.printf(" %s", EscapeTarget(d.Output.String()))
	}
	if len(node.OrderOnlys) > 0 {
		g.w.printf(" ||")
		for _, d := range node.OrderOnlys {
			g.w.printf(" %s", EscapeTarget(d.Output.String()))
		}
	}
	g.w.printf("\n")
}

// emitShortcuts writes one phony alias per unambiguous basename whose
// short form is not itself an emitted target. Aliases are sorted so
// repeated runs produce identical files.
func (g *Generator) emitShortcuts() {
	shorts := make([]domain.InternedString, 0, len(g.shortNames))
	for short, full := range g.shortNames {
		if full == ambiguousShortName {
			continue
		}
		if _, ok := g.done[short]; ok {
			continue
		}
		shorts = append(shorts, short)
	}
	sort.Slice(shorts, func(i, j int) bool {
		return shorts[i].String() < shorts[j].String()
	})
	for _, short := range shorts {
		g.w.printf("build %s: phony %s\n", short.String(), g.shortNames[short].String())
	}
}
