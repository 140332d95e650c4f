// Package cmd hosts the petstore CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petstore",
	Short: "Reference in-memory Petstore API",
	Long: `Petstore is a reference in-memory pet-store API server: pets, orders,
users, and inventory behind the classic Swagger Petstore v2 HTTP surface,
seeded with sample data on startup.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
