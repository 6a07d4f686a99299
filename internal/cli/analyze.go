package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eyeqlabs/prescreen/internal/model"
	"github.com/eyeqlabs/prescreen/internal/pipeline"
)

var (
	outJSON    string
	outMD      string
	product    string
	corpusPath string
	timeout    time.Duration
	noCache    bool
	noFooter   bool
	llmEnabled bool
	llmModel   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a promotional material for compliance issues",
	Long: `Analyze reviews a single material file (plain text, Markdown, or HTML) to:
- Extract marketing claims and match them against approved claims
- Check disclaimers for presence and placement
- Detect overpromising, absolute, and misleading language
- Validate references and flag weak substantiation
- Classify the target audience and check tone fit

Example:
  prescreen analyze brochure.md
  prescreen analyze landing.html --product "Total 30 Contact Lens"
  prescreen analyze brochure.md --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Analysis flags
	analyzeCmd.Flags().StringVar(&product, "product", "", "product name (default: auto-detect from text)")
	analyzeCmd.Flags().StringVar(&corpusPath, "corpus", "", "approved-claim corpus YAML (default: built-in corpus)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in reports")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		if product != "" {
			fmt.Fprintf(os.Stderr, "Product: %s\n", product)
		}
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	review, err := p.AnalyzeFile(ctx, file, product)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Product: %s\n", orNone(review.Product))
		fmt.Fprintf(os.Stderr, "✓ Verdict: %s\n", review.Verdict)
		fmt.Fprintf(os.Stderr, "✓ Approved claims matched: %d\n", len(review.Result.CompliantClaims))
		fmt.Fprintf(os.Stderr, "✓ Issues: %d critical, %d warning\n",
			review.Result.CriticalCount(), review.Result.WarningCount())
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(review, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles configuration from flags and environment
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Corpus.Path = corpusPath
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Enabled = true
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

func orNone(s string) string {
	if s == "" {
		return "(not detected)"
	}
	return s
}
