package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eventgen",
	Short: "Synthetic retail event generator for Kafka pipeline demos",
	Long: `A generator of realistic-looking retail events for demoing and
testing event streaming pipelines.

Four related streams are produced: online orders, return requests,
out-of-stock notices derived from recent orders, and product reviews
chained off return requests. Events carry randomized timestamps and an
occasional duplicate so downstream consumers see the messiness of a
real pipeline.

Defaults are in internal/config/defaults.go; override them with a
config file (--config), EVENTGEN_* environment variables, or flags.

Example usage:
  eventgen emit --brokers localhost:9092
  eventgen emit --count 1000 --seed 42
  eventgen preview --type order --num 3`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./eventgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("eventgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("EVENTGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
	}
}
