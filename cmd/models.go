package cmd

import (
	"fmt"

	"github.com/flifloo/roboquote/config"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the configured models",
	Long:  `Display the models available for quote generation, with their backend and prompt type.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.WithYamlFile()
		for _, m := range settings.Models {
			fmt.Printf("%s (api: %s, prompt: %s)\n", m.Name, m.API, m.PromptType)
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
