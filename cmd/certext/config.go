package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/remiblancher/certext/internal/extdoc"
)

// Configuration keys. Each is settable by flag, by CERTEXT_<KEY> in the
// environment, or in the --config file, in that order of precedence.
const (
	keyAuditLog = "audit-log"
	keyFormat   = "format"
	keyNoColor  = "no-color"
)

var (
	cfg        = viper.New()
	configFile string
)

func registerConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flags.String(keyAuditLog, "", "Path to audit log file (or set CERTEXT_AUDIT_LOG)")
	flags.StringP(keyFormat, "f", string(extdoc.FormatText), "Output format: text, yaml, json, cbor")
	flags.Bool(keyNoColor, false, "Disable colored output")
}

// loadConfig rebuilds cfg from the root flags, the environment and the
// optional config file.
func loadConfig(root *cobra.Command) error {
	v := viper.New()
	flags := root.PersistentFlags()
	for _, key := range []string{keyAuditLog, keyFormat, keyNoColor} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}

	v.SetEnvPrefix("CERTEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	cfg = v
	return nil
}

func outputFormat() (extdoc.Format, error) {
	return extdoc.ParseFormat(cfg.GetString(keyFormat))
}
