package homefiles

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/content"
	"github.com/arthur-debert/homefiles/pkg/filesystem"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/mapping"
	"github.com/arthur-debert/homefiles/pkg/output"
	"github.com/arthur-debert/homefiles/pkg/types"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var (
		format   string
		checksum bool
		layout   string
		packages []string
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:     "resolve",
		Aliases: []string{"list"},
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.resolve")

			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return fmt.Errorf(MsgErrInvalidFmt, err)
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("layout") {
				overrides["layout"] = layout
			}
			if cmd.Flags().Changed("packages") {
				overrides["packages"] = packages
			}
			if cmd.Flags().Changed("exclude") {
				overrides["excluded"] = exclude
			}

			cfg, path, err := loadConfiguration(opts, overrides)
			if err != nil {
				return err
			}

			logger.Info().
				Str("config", path).
				Str("sourceRoot", cfg.SourceRoot()).
				Str("layout", cfg.Layout().String()).
				Msg("Resolving mappings")

			fsys := filesystem.NewOS()
			entries, err := mapping.Assemble(cfg, fsys)
			if err != nil {
				return fmt.Errorf(MsgErrResolve, err)
			}

			report := output.NewReport(cfg.SourceRoot(), cfg.Layout(), entries)

			if checksum {
				loader := content.NewLoader(fsys)
				for i, e := range entries {
					sum, err := content.Checksum(loader, e.Content)
					if err != nil {
						return fmt.Errorf(MsgErrChecksum, e.Destination, err)
					}
					report.Entries[i].Checksum = sum
				}
			}

			duplicates := mapping.Duplicates(entries)
			if len(duplicates) > 0 {
				warn := rendererFor(cmd, opts, output.FormatAuto, true)
				for _, d := range duplicates {
					report.Duplicates = append(report.Duplicates, d.Destination)
					warn.Warn(MsgDuplicateWarning, d.Destination, len(d.Sources), joinSources(d.Sources))
				}
			}

			if err := rendererFor(cmd, opts, outFormat, false).Render(report); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().BoolVar(&checksum, "checksum", false, MsgFlagChecksum)
	cmd.Flags().StringVar(&layout, "layout", "", MsgFlagLayout)
	cmd.Flags().StringSliceVar(&packages, "packages", nil, MsgFlagPackages)
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, MsgFlagExclude)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return types.LayoutNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func joinSources(sources []string) string {
	return strings.Join(sources, ", ")
}
