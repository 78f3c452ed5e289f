package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brandlens/internal/model"
)

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "brandlens",
		Short:         "Brand insight API server",
		Long:          "brandlens serves conversational brand analytics over OpenAI-compatible and Ollama chat backends.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./configs/config.yaml)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newModelsCommand())

	return root
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the selectable model names and their backends",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range model.Available() {
				route := model.Resolve(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s/%s\n", name, route.Provider, route.ModelID)
			}
		},
	}
}
