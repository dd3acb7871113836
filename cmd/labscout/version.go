package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/labscout"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of labscout",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("labscout version %s\n", strings.TrimSpace(labscout.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
