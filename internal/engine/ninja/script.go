package ninja

import (
	"bufio"
	"os"

	"go.trai.ch/ninjify/internal/build"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeEnvFile writes the environment snapshot, one name=value line per
// tracked variable, sorted by name. Nothing is written when no variable
// was tracked.
func (g *Generator) writeEnvFile() error {
	if len(g.envNames) == 0 {
		return nil
	}

	f, err := os.Create(g.cfg.EnvFile())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileWriteFailed.Error()), "path", g.cfg.EnvFile())
	}
	defer f.Close() //nolint:errcheck // Close error is caught by the explicit Close below

	w := &writer{w: bufio.NewWriter(f)}
	for _, name := range g.envNames {
		w.printf("%s=%s\n", name, g.usedEnvs[name])
	}

	if err := w.flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileWriteFailed.Error()), "path", g.cfg.EnvFile())
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileWriteFailed.Error()), "path", g.cfg.EnvFile())
	}
	return nil
}

// writeScript writes the executable launcher script that re-invokes ninja
// against the generated file with the evaluator's exported environment.
func (g *Generator) writeScript() error {
	f, err := os.OpenFile(g.cfg.ScriptFile(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.ScriptPerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", g.cfg.ScriptFile())
	}
	defer f.Close() //nolint:errcheck // Close error is caught by the explicit Close below

	w := &writer{w: bufio.NewWriter(f)}
	w.printf("#!%s\n", g.shell)
	w.printf("# Generated by ninjify %s\n", build.Version)
	w.printf("\n")
	if g.cfg.outDir() == "." {
		w.printf("cd $(dirname \"$0\")\n")
	}
	if g.cfg.Suffix != "" {
		w.printf("if [ -f %s ]; then\n export $(cat %s)\nfi\n", g.cfg.EnvFile(), g.cfg.EnvFile())
	}

	for _, e := range g.ev.Exports() {
		if e.Export {
			w.printf("export %s=%s\n", e.Name, g.ev.EvalVar(e.Name))
		} else {
			w.printf("unset %s\n", e.Name)
		}
	}

	w.printf("exec ninja -f %s ", g.cfg.NinjaFile())
	if g.cfg.WrapperDir != "" {
		w.printf("-j500 ")
	}
	w.printf("\"$@\"\n")

	if err := w.flush(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", g.cfg.ScriptFile())
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", g.cfg.ScriptFile())
	}

	// OpenFile only applies the mode on creation; an earlier run may have
	// left the file behind with different permissions.
	if err := os.Chmod(g.cfg.ScriptFile(), domain.ScriptPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScriptWriteFailed.Error()), "path", g.cfg.ScriptFile())
	}
	return nil
}
