package cmd

import (
	"fmt"

	"github.com/flifloo/roboquote/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of roboquote`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Roboquote v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
