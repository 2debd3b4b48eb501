package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careflow",
	Short: "Careflow is an embeddable conversational-commerce widget core",
	Long: `Careflow drives a chat assistant that elicits preferences, recommends
catalog products, and carries selections through a checkout flow. Use "run"
for an interactive terminal session or "serve" to expose sessions over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML catalog file (default: built-in demo catalog)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
