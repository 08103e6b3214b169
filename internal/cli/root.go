package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vk/remapc/internal/app"
	"github.com/vk/remapc/internal/config"
	"github.com/vk/remapc/internal/version"
)

// rootOptions are the flags of the compile command.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	indent     string
	output     string
}

func (o *rootOptions) addFlags(fs *pflag.FlagSet) {
	defaults := config.DefaultSettings()
	fs.StringVar(&o.configPath, "config", "", "Settings file (.yaml, .yml or .toml). Defaults to $"+config.EnvConfigPath+".")
	fs.StringVar(&o.logLevel, "log-level", defaults.LogLevel, "Logging level: debug, info, warn or error.")
	fs.StringVar(&o.logFormat, "log-format", defaults.LogFormat, "Log output format: text or json.")
	fs.StringVar(&o.indent, "indent", defaults.Indent, "Indent the JSON output: auto, always or never.")
	fs.StringVarP(&o.output, "output", "o", "", "Write the JSON document to this file instead of stdout.")
}

// NewRootCmd builds the remapc command tree. The compiled document and
// command output go to outW; logs and help for errors go to errW.
func NewRootCmd(outW, errW io.Writer, loader config.Loader) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "remapc [flags] SCRIPT",
		Short: "Compile key remapping scripts to JSON",
		Long: `remapc compiles a key remapping script into the JSON configuration
read by the remapping daemon.

SCRIPT is a script file or a directory. A directory compiles every *.hcl
and *.hcl.json file under it, in path order, into one configuration.

Examples:
  remapc keymap.hcl                    # Print the configuration
  remapc -o config.json keymap.hcl     # Write it to a file
  remapc --log-level debug scripts/    # Compile a directory, show every directive`,
		Version:       version.Version,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags(), args[0])
			if err != nil {
				return err
			}
			return app.NewApp(outW, errW, cfg, loader).Run(cmd.Context())
		},
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})
	opts.addFlags(cmd.Flags())

	cmd.AddCommand(newSchemaCmd(outW))
	cmd.AddCommand(newFmtCmd(outW))
	return cmd
}

// resolve layers explicit flags over the settings file over the defaults.
func (o *rootOptions) resolve(fs *pflag.FlagSet, script string) (*app.Config, error) {
	settings := config.DefaultSettings()

	path := o.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path != "" {
		loaded, err := config.LoadSettings(path)
		if err != nil {
			return nil, usageError("%v", err)
		}
		settings = loaded
	}

	if fs.Changed("log-level") {
		settings.LogLevel = o.logLevel
	}
	if fs.Changed("log-format") {
		settings.LogFormat = o.logFormat
	}
	if fs.Changed("indent") {
		settings.Indent = o.indent
	}
	if fs.Changed("output") {
		settings.Output = o.output
	}

	cfg, err := app.NewConfig(app.Config{
		ScriptPath: script,
		OutputPath: settings.Output,
		Indent:     settings.Indent,
		LogFormat:  settings.LogFormat,
		LogLevel:   settings.LogLevel,
	})
	if err != nil {
		return nil, usageError("%v", err)
	}
	return cfg, nil
}

// exactArgs wraps cobra.ExactArgs so a wrong argument count exits with the
// usage code.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError("%s: %v", cmd.CommandPath(), err)
		}
		return nil
	}
}
