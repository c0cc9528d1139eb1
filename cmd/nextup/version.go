package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/nextup"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nextup",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nextup version %s\n", strings.TrimSpace(nextup.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
