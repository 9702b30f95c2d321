package homefiles

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve where your dotfiles belong"
	MsgResolveShort    = "Print the destination to source mapping"
	MsgCheckShort      = "Validate the configuration and its directories"
	MsgGenconfigShort  = "Write a starter configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or render one of them."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgVersionFormat     = "homefiles version %s\n  commit: %s\n  built:  %s\n"
	MsgDuplicateWarning  = "%s is produced by %d sources: %s"
	MsgCheckConfig       = "Configuration: %s"
	MsgCheckDirOK        = "  ok    %s (%d files)\n"
	MsgCheckDirFailed    = "  FAIL  %s: %v\n"
	MsgCheckSummary      = "%d directories, %d mappings, %d duplicate destinations"
	MsgConfigWritten     = "Wrote %s"
	MsgTopicNotFound     = "unknown topic %q (run \"homefiles topics\" for a list)"
	MsgManPagesGenerated = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrResolve     = "failed to resolve mappings: %w"
	MsgErrChecksum    = "failed to checksum %s: %w"
	MsgErrRender      = "failed to render output: %w"
	MsgErrCheckFailed = "%d of %d directories failed validation"
	MsgErrGenconfig   = "failed to write configuration: %w"
	MsgErrTopicsLoad  = "failed to load help topics: %w"
	MsgErrInvalidFmt  = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Path to the configuration file (default: search $XDG_CONFIG_HOME/homefiles)"
	MsgFlagNoColor   = "Disable coloured output"
	MsgFlagFormat    = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagChecksum  = "Include a sha256 checksum of each source file"
	MsgFlagLayout    = "Override the layout (plain or stow)"
	MsgFlagPackages  = "Override the stow packages to deploy (comma separated)"
	MsgFlagExclude   = "Override the exclusion patterns (comma separated regular expressions)"
	MsgFlagForce     = "Overwrite an existing configuration file"
	MsgFlagGenLayout = "Layout written into the starter configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenconfigExampleRaw string
	MsgGenconfigExample    = strings.TrimRight(msgGenconfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
