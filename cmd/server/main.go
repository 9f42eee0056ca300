// Package main is the entry point for the sheet API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheet-api",
	Short: "Character sheet API server",
	Long:  `sheet-api serves the item economy of character sheets: inventory, equipment slots, utility slots, and crafting.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}
