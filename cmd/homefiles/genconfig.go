package homefiles

import (
	"fmt"

	"github.com/arthur-debert/homefiles/pkg/config"
	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/output"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/arthur-debert/homefiles/pkg/types"
	"github.com/spf13/cobra"
)

func newGenconfigCmd() *cobra.Command {
	var (
		force  bool
		layout string
	)

	cmd := &cobra.Command{
		Use:     "genconfig [path]",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		Example: MsgGenconfigExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := types.ParseLayout(layout)
			if err != nil {
				return fmt.Errorf(MsgErrGenconfig, errors.Wrap(err, errors.ErrLayoutInvalid, "invalid layout").
					WithDetail("layout", layout))
			}

			opts := config.Default()
			opts.Layout = l.String()

			if len(args) == 1 && args[0] == "-" {
				data, err := config.Generate(opts)
				if err != nil {
					return fmt.Errorf(MsgErrGenconfig, err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path := paths.DefaultConfigPath()
			if len(args) == 1 {
				if path, err = paths.ExpandHome(args[0]); err != nil {
					return fmt.Errorf(MsgErrGenconfig, err)
				}
			}

			if err := config.WriteStarter(path, opts, force); err != nil {
				return fmt.Errorf(MsgErrGenconfig, err)
			}

			output.NewRenderer(cmd.OutOrStdout(), output.FormatAuto).Success(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&layout, "layout", types.LayoutPlain.String(), MsgFlagGenLayout)

	return cmd
}
