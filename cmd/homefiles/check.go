package homefiles

import (
	"fmt"

	"github.com/arthur-debert/homefiles/pkg/enumerate"
	"github.com/arthur-debert/homefiles/pkg/filesystem"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/mapping"
	"github.com/arthur-debert/homefiles/pkg/output"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			cfg, path, err := loadConfiguration(opts, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := rendererFor(cmd, opts, output.FormatAuto, false)
			r.Success(MsgCheckConfig, path)

			fsys := filesystem.NewOS()
			enumerator := enumerate.New(fsys, cfg.Matcher())

			directories := cfg.Directories()
			failed := 0
			for _, ref := range directories {
				dir := paths.Resolve(ref, cfg.SourceRoot())
				files, err := enumerator.Enumerate(dir, cfg.EnumerationPackages())
				if err != nil {
					failed++
					logger.Debug().Err(err).Str("directory", dir).Msg("Directory failed validation")
					fmt.Fprintf(out, MsgCheckDirFailed, ref, err)
					continue
				}
				fmt.Fprintf(out, MsgCheckDirOK, ref, len(files))
			}

			if failed > 0 {
				return fmt.Errorf(MsgErrCheckFailed, failed, len(directories))
			}

			// Layout errors only surface once paths are stripped
			entries, err := mapping.Assemble(cfg, fsys)
			if err != nil {
				return fmt.Errorf(MsgErrResolve, err)
			}

			duplicates := mapping.Duplicates(entries)
			for _, d := range duplicates {
				r.Warn(MsgDuplicateWarning, d.Destination, len(d.Sources), joinSources(d.Sources))
			}

			fmt.Fprintln(out)
			r.Success(MsgCheckSummary, len(directories), len(entries), len(duplicates))
			return nil
		},
	}
}
