// Package main provides the entry point for the resumetex CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var rootCmd = &cobra.Command{
	Use:   "resumetex",
	Short: "HTML resume to LaTeX converter",
	Long:  "resumetex converts HTML resume documents into strictly formatted one-page LaTeX resumes, from local files or a remote document store.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Size GOMAXPROCS to the container CPU quota
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
