package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "arona",
		Short:        "Blue Archive recruitment bot",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), rollCmd(), simulateCmd())
	return root
}
