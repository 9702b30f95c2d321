package homefiles

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/homefiles/internal/version"
	"github.com/arthur-debert/homefiles/pkg/cobrax/topics"
	"github.com/arthur-debert/homefiles/pkg/config"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/output"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var embeddedTopics embed.FS

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configPath string
	noColor    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "homefiles",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: opts.verbosity,
				NoColor:   opts.noColor || os.Getenv("NO_COLOR") != "",
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	manager, err := loadTopics()
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd(manager))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if manager != nil {
		manager.Install(rootCmd)
	}

	return rootCmd
}

func loadTopics() (*topics.Manager, error) {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		return nil, fmt.Errorf(MsgErrTopicsLoad, err)
	}
	manager, err := topics.New(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrTopicsLoad, err)
	}
	return manager, nil
}

// loadConfiguration finds and loads the configuration, applying overrides
func loadConfiguration(opts *globalOptions, overrides map[string]interface{}) (*config.Configuration, string, error) {
	path := opts.configPath
	if path == "" {
		found, err := paths.FindConfigFile()
		if err != nil {
			return nil, "", fmt.Errorf(MsgErrLoadConfig, err)
		}
		path = found
	}

	cfg, err := config.Load(path, overrides)
	if err != nil {
		return nil, path, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, path, nil
}

// rendererFor builds a renderer honouring --no-color
func rendererFor(cmd *cobra.Command, opts *globalOptions, format output.Format, stderr bool) *output.Renderer {
	if opts.noColor && (format == output.FormatAuto || format == output.FormatTerminal) {
		format = output.FormatText
	}
	if stderr {
		return output.NewRenderer(cmd.ErrOrStderr(), format)
	}
	return output.NewRenderer(cmd.OutOrStdout(), format)
}
