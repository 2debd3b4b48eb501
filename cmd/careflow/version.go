package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resultflow/careflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of careflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("careflow version %s\n", careflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
