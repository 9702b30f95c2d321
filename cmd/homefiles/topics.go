package homefiles

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/homefiles/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

func newTopicsCmd(manager *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [name]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if manager == nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return manager.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if manager == nil {
				return fmt.Errorf(MsgErrTopicsLoad, errors.New("no topics embedded"))
			}
			if len(args) == 0 {
				manager.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := manager.Get(args[0])
			if !ok {
				return fmt.Errorf(MsgTopicNotFound, args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), manager.Render(topic))
			return nil
		},
	}
}
