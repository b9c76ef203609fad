package main

import (
	"fmt"
	"os"

	"github.com/recadosapp/recados/client"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	apiURL  string
	api     *client.Client
)

var rootCmd = &cobra.Command{
	Use:     "recadoctl",
	Short:   "Command line client for the Sistema de Recados API",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(apiURL)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:3001", "Base URL of the recados API")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
