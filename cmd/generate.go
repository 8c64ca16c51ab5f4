package cmd

import (
	"fmt"

	"github.com/flifloo/roboquote/background"
	"github.com/flifloo/roboquote/config"
	"github.com/flifloo/roboquote/logger"
	"github.com/flifloo/roboquote/model"
	"github.com/flifloo/roboquote/quote"
	"github.com/spf13/cobra"
)

var (
	themeFlag string
	modelFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an inspirational quote for a theme",
	Long: `Generate a short inspirational quote matching a theme keyword.
The quote is printed on stdout. Without --theme a random background theme is
picked; without --model a random configured model is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.WithYamlFile()

		theme := themeFlag
		if theme == "" {
			theme = background.RandomThemeQuery()
			logger.Infof("No theme given, picked: %s", theme)
		}

		m, err := pickModel(settings)
		if err != nil {
			return err
		}
		logger.Infof("Generating quote for theme %q with model %s", theme, m.Name)

		q, err := quote.NewService().GetRandomQuote(cmd.Context(), theme, m)
		if err != nil {
			logger.Errorf("Failed to generate quote: %v", err)
			return err
		}

		fmt.Println(q)
		return nil
	},
}

func pickModel(settings config.Settings) (model.Descriptor, error) {
	if modelFlag != "" {
		m, ok := settings.FindModel(modelFlag)
		if !ok {
			return model.Descriptor{}, fmt.Errorf("model %q is not configured", modelFlag)
		}
		return m, nil
	}

	m, ok := settings.RandomModel()
	if !ok {
		return model.Descriptor{}, fmt.Errorf("no models configured")
	}
	return m, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&themeFlag, "theme", "t", "",
		"Theme keyword to bias the quote (random background theme if empty)")
	generateCmd.Flags().StringVarP(&modelFlag, "model", "m", "",
		"Name of the configured model to use (random if empty)")
}
