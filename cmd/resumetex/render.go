// Package main implements the resumetex CLI for HTML to LaTeX resume conversion.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mwhitlatch/resumetex/internal/config"
	"github.com/mwhitlatch/resumetex/internal/docstore"
	"github.com/mwhitlatch/resumetex/internal/observability"
	"github.com/mwhitlatch/resumetex/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an HTML resume to LaTeX",
	Long:  "Converts an HTML resume from a local file, stdin, or the document store into a strictly formatted one-page LaTeX resume.",
	RunE:  runRender,
}

var (
	renderFile       string
	renderDocuments  []string
	renderUserID     string
	renderOutput     string
	renderStoreURL   string
	renderStoreToken string
	renderConfigPath string
	renderVerbose    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "Path to HTML resume file (use '-' for stdin)")
	renderCmd.Flags().StringSliceVarP(&renderDocuments, "document", "d", nil, "Stored document id to fetch and render (repeatable)")
	renderCmd.Flags().StringVarP(&renderUserID, "user", "u", "", "User id owning the stored documents")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output path (directory when rendering multiple documents)")
	renderCmd.Flags().StringVar(&renderStoreURL, "store-url", "", "Document store base URL (optional, defaults to RESUMETEX_STORE_URL env var)")
	renderCmd.Flags().StringVar(&renderStoreToken, "store-token", "", "Document store bearer token (optional, defaults to RESUMETEX_STORE_TOKEN env var)")
	renderCmd.Flags().StringVarP(&renderConfigPath, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of the parsed resume")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRenderConfig(cmd)
	if err != nil {
		return err
	}

	useStore := len(renderDocuments) > 0
	useFile := renderFile != ""

	if useStore && useFile {
		return fmt.Errorf("--file and --document are mutually exclusive; provide only one")
	}
	if !useStore && !useFile {
		return fmt.Errorf("either --file or --document must be provided")
	}

	if useFile {
		return renderFromFile(cfg)
	}
	return renderFromStore(ctx, cfg)
}

// loadRenderConfig resolves the effective configuration from the config file,
// CLI flags, environment variables, and built-in defaults, in that priority order.
func loadRenderConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if renderConfigPath != "" {
		loadedCfg, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if renderVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", renderConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("store-url") {
		cfg.StoreURL = renderStoreURL
	}
	if cmd.Flags().Changed("store-token") {
		cfg.StoreToken = renderStoreToken
	}
	if cmd.Flags().Changed("user") {
		cfg.UserID = renderUserID
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = renderOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = renderVerbose
	}

	// Step 3: Environment fallbacks for store access
	if cfg.StoreURL == "" {
		cfg.StoreURL = os.Getenv("RESUMETEX_STORE_URL")
	}
	if cfg.StoreToken == "" {
		cfg.StoreToken = os.Getenv("RESUMETEX_STORE_TOKEN")
	}

	// Step 4: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 5: Validate
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// renderFromFile converts a local HTML file (or stdin) to LaTeX.
func renderFromFile(cfg config.Config) error {
	html, err := readInput(renderFile)
	if err != nil {
		return err
	}

	p := pipeline.New(nil)
	result, err := p.Convert(string(html))
	if err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}

	outputPath := cfg.Output
	if outputPath == "" {
		outputPath = defaultOutputName()
	}

	if err := writeOutput(outputPath, result.LaTeX); err != nil {
		return err
	}

	if cfg.Verbose {
		printSummary(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered LaTeX resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)
	if result.Degraded {
		_, _ = fmt.Fprintf(os.Stdout, "Warning: no resume structure was recognized; output is a minimal document\n")
	}
	return nil
}

// renderFromStore fetches one or more stored documents and converts them
// concurrently.
func renderFromStore(ctx context.Context, cfg config.Config) error {
	if cfg.UserID == "" {
		return fmt.Errorf("--user is required with --document")
	}
	if cfg.StoreURL == "" {
		return fmt.Errorf("RESUMETEX_STORE_URL environment variable or --store-url flag is required")
	}

	store := docstore.NewClient(cfg.StoreURL, &docstore.Options{
		Timeout:   time.Duration(cfg.FetchTimeout) * time.Second,
		AuthToken: cfg.StoreToken,
	})
	p := pipeline.New(store)

	// With multiple documents --out names a directory
	outputDir := ""
	if len(renderDocuments) > 1 && cfg.Output != "" {
		outputDir = cfg.Output
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]pipeline.Result, len(renderDocuments))
	outputs := make([]string, len(renderDocuments))

	g, gCtx := errgroup.WithContext(ctx)
	for i, documentID := range renderDocuments {
		g.Go(func() error {
			result, err := p.ConvertDocument(gCtx, cfg.UserID, documentID)
			if err != nil {
				return fmt.Errorf("document %s: %w", documentID, err)
			}

			outputPath := documentOutputPath(cfg.Output, outputDir, documentID)
			if err := writeOutput(outputPath, result.LaTeX); err != nil {
				return err
			}

			results[i] = result
			outputs[i] = outputPath
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, documentID := range renderDocuments {
		if cfg.Verbose {
			printSummary(results[i])
		}
		_, _ = fmt.Fprintf(os.Stdout, "Rendered document %s\n", documentID)
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputs[i])
	}
	return nil
}

// readInput reads the HTML source from a file path, or from stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// defaultOutputName generates a fresh output file name.
func defaultOutputName() string {
	return fmt.Sprintf("resume-%s.tex", uuid.New().String())
}

// documentOutputPath picks the output path for one rendered document.
func documentOutputPath(out string, outputDir string, documentID string) string {
	switch {
	case outputDir != "":
		return filepath.Join(outputDir, fmt.Sprintf("resume-%s.tex", documentID))
	case out != "":
		return out
	default:
		return fmt.Sprintf("resume-%s.tex", documentID)
	}
}

// writeOutput writes the LaTeX source, creating parent directories as needed.
func writeOutput(path string, latex string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(latex), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// printSummary prints the verbose parse summary boxes.
func printSummary(result pipeline.Result) {
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintModel(result.Model)
	if result.Model != nil {
		printer.PrintExperience(result.Model.Experience)
		printer.PrintProjects(result.Model.Projects)
		printer.PrintSkills(result.Model.Skills)
	}
}
