package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RenderReport writes the review to the requested outputs and prints
// the formatted report to stdout.
func (p *Pipeline) RenderReport(review *Review, jsonPath, mdPath string, verbose bool) error {
	if err := p.WriteReport(review, jsonPath, mdPath, verbose); err != nil {
		return err
	}

	// Print report to stdout
	fmt.Println(review.Report)
	fmt.Println(review.Summary)

	return nil
}

// WriteReport writes the review files without printing the report
func (p *Pipeline) WriteReport(review *Review, jsonPath, mdPath string, verbose bool) error {
	// Render JSON
	if jsonPath != "" {
		if err := writeJSON(review, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render Markdown
	if mdPath != "" {
		if err := writeMarkdown(review, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Render LLM summary to separate file if present
	if review.LLMSummary != "" && mdPath != "" {
		llmMdPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := os.WriteFile(llmMdPath, []byte(review.LLMSummary+"\n"), 0o644); err != nil {
			fmt.Printf("Warning: Failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM Summary: %s\n", llmMdPath)
		}
	}

	return nil
}

func writeJSON(review *Review, path string) error {
	data, err := json.MarshalIndent(review, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeMarkdown(review *Review, path string) error {
	var b strings.Builder
	b.WriteString(review.Report)
	b.WriteString("\n")
	b.WriteString(review.Summary)
	b.WriteString("\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
