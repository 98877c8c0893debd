package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/ninjify/internal/adapters/watcher"
	"go.trai.ch/ninjify/internal/app"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/engine/ninja"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [targets...]",
		Short: "Generate the ninja file for the given targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graphFile, _ := cmd.Flags().GetString("graph")
			dir, _ := cmd.Flags().GetString("dir")
			suffix, _ := cmd.Flags().GetString("suffix")
			wrapperDir, _ := cmd.Flags().GetString("wrapper-dir")
			jobs, _ := cmd.Flags().GetInt("jobs")
			detectEcho, _ := cmd.Flags().GetBool("detect-echo")
			regen, _ := cmd.Flags().GetBool("regen")
			failOnEnvChange, _ := cmd.Flags().GetBool("fail-on-env-change")
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.Options{
				GraphFile: graphFile,
				Targets:   args,
				Force:     force,
				Config: ninja.Config{
					Dir:                dir,
					Suffix:             suffix,
					WrapperDir:         wrapperDir,
					Jobs:               jobs,
					DetectDescriptions: detectEcho,
					EmitRegenRules:     regen,
					FailOnEnvChange:    failOnEnvChange,
					OrigArgs:           strings.Join(os.Args, " "),
				},
			}

			if watch {
				w, err := watcher.NewWatcher()
				if err != nil {
					return err
				}
				return c.app.Watch(cmd.Context(), w, opts)
			}
			return c.app.Generate(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("graph", "g", domain.GraphFileName, "Path of the evaluated graph file")
	cmd.Flags().StringP("dir", "C", ".", "Directory the output files are written to")
	cmd.Flags().String("suffix", "", "Suffix for the generated file names")
	cmd.Flags().String("wrapper-dir", "", "Compiler wrapper directory (enables wrapper mode)")
	cmd.Flags().IntP("jobs", "j", 500, "Depth of the local pool in wrapper mode")
	cmd.Flags().Bool("detect-echo", false, "Turn leading echo commands into rule descriptions")
	cmd.Flags().Bool("regen", false, "Emit self-regeneration rules")
	cmd.Flags().Bool("fail-on-env-change", false, "Fail the build when a tracked environment variable changed")
	cmd.Flags().Bool("force", false, "Regenerate even when the graph file is unchanged")
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the graph file changes")
	return cmd
}
