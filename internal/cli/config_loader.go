// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"todohub/internal/config"
	"todohub/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags onto config keys. A flag only counts when
// it was set explicitly on the command being run.
var flagKeys = map[string]string{
	"config_path":   "config_path",
	"log-level":     "logging.level",
	"port":          "server.port",
	"audit-enabled": "logging.audit_enabled",
}

// loadConfig builds the effective configuration.
// Precedence: flags > environment (TODOHUB_*) > config file > defaults.
func (options *GlobalOptions) loadConfig(cmd *cobra.Command) error {
	v := newViper(cmd)

	path := v.GetString("config_path")
	if path == "" {
		path = "config.toml"
	}
	options.CfgFilePath = path

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// rely on defaults/env/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	applyOverrides(cfg, v)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)
	options.Logger = logging.Log
	options.Conf = cfg
	options.LogLevel = cfg.Logging.Level

	return nil
}

// newViper returns a viper instance reading TODOHUB_* variables, with the
// flags of cmd bound on top.
func newViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TODOHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindFlags(v, cmd.Flags())
	return v
}

// bindFlags binds the flags of flagKeys that exist in flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}

// applyOverrides copies every key set in the environment or on the command
// line into c. Keys that are unset leave the file value untouched.
func applyOverrides(c *config.Config, v *viper.Viper) {
	setString := func(key string, target *string) {
		if v.IsSet(key) {
			*target = v.GetString(key)
		}
	}
	setInt := func(key string, target *int) {
		if v.IsSet(key) {
			*target = v.GetInt(key)
		}
	}
	setBoolPtr := func(key string, target **bool) {
		if v.IsSet(key) {
			b := v.GetBool(key)
			*target = &b
		}
	}

	// server
	setString("server.host", &c.Server.Host)
	setInt("server.port", &c.Server.Port)
	setString("server.read_timeout", &c.Server.ReadTimeout)
	setString("server.write_timeout", &c.Server.WriteTimeout)
	setString("server.shutdown_timeout", &c.Server.ShutdownTimeout)

	// database
	setString("database.url", &c.Database.URL)
	setInt("database.max_open_conns", &c.Database.MaxOpenConns)
	setInt("database.max_idle_conns", &c.Database.MaxIdleConns)
	setString("database.conn_max_lifetime", &c.Database.ConnMaxLifetime)
	setString("database.conn_max_idle_time", &c.Database.ConnMaxIdleTime)
	setString("database.acquire_timeout", &c.Database.AcquireTimeout)
	setBoolPtr("database.auto_migrate", &c.Database.AutoMigrate)

	// logging
	setString("logging.level", &c.Logging.Level)
	if v.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = v.GetBool("logging.audit_enabled")
	}

	// api and probe
	setBoolPtr("api.strict_validation", &c.API.StrictValidation)
	setString("probe.interval", &c.Probe.Interval)
}
