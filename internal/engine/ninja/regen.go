package ninja

// emitRegenRules writes the self-regeneration rules: one edge that re-runs
// the original invocation whenever a makefile or the environment snapshot
// changes, and one that recomputes the snapshot on every build to catch
// environment drift.
func (g *Generator) emitRegenRules() {
	if !g.cfg.EmitRegenRules {
		return
	}

	g.w.printf("rule regen_ninja\n")
	g.w.printf(" command = %s\n", g.cfg.OrigArgs)
	g.w.printf(" generator = 1\n")
	g.w.printf(" description = Regenerate ninja files due to dependency\n")
	g.w.printf("build %s: regen_ninja", g.cfg.NinjaFile())
	for _, makefile := range g.ev.Makefiles() {
		g.w.printf(" %s", makefile)
	}
	if len(g.envNames) > 0 {
		g.w.printf(" %s", g.cfg.EnvFile())
	}
	g.w.printf("\n\n")

	if len(g.envNames) == 0 {
		return
	}

	g.w.printf("build .always_build: phony\n")
	g.w.printf("rule regen_envlist\n")
	g.w.printf(" command = rm -f $out.tmp")
	for _, name := range g.envNames {
		g.w.printf(" && echo %s=$$%s >> $out.tmp", name, name)
	}
	if g.cfg.FailOnEnvChange {
		g.w.printf(" && (diff $out.tmp $out || (echo Environment variable changes are detected && false))\n")
	} else {
		g.w.printf(" && (diff $out.tmp $out || mv $out.tmp $out)\n")
	}
	g.w.printf(" restat = 1\n")
	g.w.printf(" generator = 1\n")
	g.w.printf(" description = Check $out\n")
	g.w.printf("build %s: regen_envlist .always_build\n\n", g.cfg.EnvFile())
}
