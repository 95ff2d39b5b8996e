package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/govalues/measure"
	"github.com/govalues/measure/config"
)

const defaultConfigFile = "measure.yaml"

// app holds the state shared by the subcommands.
type app struct {
	configPath string
	debug      bool

	cfg *config.Config
	ns  measure.NumberSystem
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Convert values between units of measurement",
		Long: `Convert values between units of measurement using exact rational arithmetic.

The configuration is read from the file given by --config. If it is not specified, the first defined value of $MEASURE_CONFIG, $XDG_CONFIG_HOME/measure.yaml, or $HOME/.config/measure.yaml is used. If the file does not exist, exact arithmetic and the standard values of all constants are used. The settings can be overridden by $MEASURE_SYSTEM and $MEASURE_CONSTANTS, such as MEASURE_CONSTANTS=gravity=9.81.`,
		PersistentPreRunE: a.init,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	cmd.MarkPersistentFlagFilename("config", "yaml", "yml")

	cmd.AddCommand(
		newConvertCmd(a),
		newUnitsCmd(a),
		newConstantsCmd(a),
		newDocGenCmd(a),
	)
	return cmd
}

// init sets up logging and loads the config.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.debug {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path, err := a.findConfig()
	if err != nil {
		return err
	}
	a.cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if err := a.cfg.FromEnv(); err != nil {
		return err
	}
	a.log.Debug("Config loaded", "path", path, "system", a.cfg.System)

	a.ns, err = a.cfg.NumberSystem()
	if err != nil {
		return err
	}
	return a.cfg.Apply()
}

func (a *app) findConfig() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	if env, ok := os.LookupEnv("MEASURE_CONFIG"); ok && env != "" {
		return env, nil
	}
	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, defaultConfigFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", defaultConfigFile), nil
}
