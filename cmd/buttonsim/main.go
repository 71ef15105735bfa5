// Command buttonsim runs the button controller against a simulated board.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bigredbutton-go/services/config"
	"bigredbutton-go/types"
)

var (
	configPath string
	logLevel   string

	mainCmd = &cobra.Command{
		Use:               "buttonsim",
		Short:             "Drive the button controller from a script or the keyboard",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	scriptCmd = &cobra.Command{
		Use:   "script FILE",
		Short: "Run a command script (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runScriptCmd,
	}
	interactiveCmd = &cobra.Command{
		Use:   "interactive",
		Short: "Space toggles the button, 0-3 select the program, q quits",
		Args:  cobra.NoArgs,
		RunE:  runInteractiveCmd,
	}
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
)

func setup(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

func loadConfig() (types.AppConfig, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runScriptCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	in := os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return runScript(cfg, in, log.StandardLogger())
}

func runInteractiveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runInteractive(cfg, os.Stdin, os.Stdout, log.StandardLogger())
}

func runConfigCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	raw, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(raw)
	return err
}

func main() {
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (defaults when empty)")
	mainCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	mainCmd.AddCommand(scriptCmd, interactiveCmd, configCmd)

	if err := mainCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
