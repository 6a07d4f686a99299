// Package pipeline wires the analysis engine to its callers: corpus
// loading, report caching, rendering, and the optional LLM summary.
// All I/O lives here; the engine itself stays pure.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eyeqlabs/prescreen/internal/analyze"
	"github.com/eyeqlabs/prescreen/internal/cache"
	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/ingest"
	"github.com/eyeqlabs/prescreen/internal/llm"
	"github.com/eyeqlabs/prescreen/internal/model"
	"github.com/eyeqlabs/prescreen/internal/report"
)

// Pipeline orchestrates a complete review of one material
type Pipeline struct {
	analyzer   *analyze.Analyzer
	corpus     *corpus.Corpus
	cache      cache.Cache
	cacheTTL   time.Duration
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	c := corpus.Default()
	if cfg.Corpus.Path != "" {
		loaded, err := corpus.LoadFile(cfg.Corpus.Path)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
		c = loaded
	}

	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	// Create LLM summarizer if configured
	var summarizer *llm.Summarizer
	if cfg.LLM.Enabled {
		s, err := llm.NewSummarizer(llm.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			BaseURL:   cfg.LLM.BaseURL,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   time.Duration(cfg.LLM.Timeout) * time.Second,
		})
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM summarizer: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		analyzer:   analyze.New(c, corpus.DefaultReferences()),
		corpus:     c,
		cache:      reportCache,
		cacheTTL:   cfg.Cache.TTL,
		summarizer: summarizer,
		config:     cfg,
	}, nil
}

// Products returns the names in the loaded corpus
func (p *Pipeline) Products() []string {
	return p.corpus.Names()
}

// Review is a finished review: the structured result plus its rendered
// forms. LLMSummary is empty unless the summarizer is enabled.
type Review struct {
	Product    string                `json:"product"`
	Verdict    string                `json:"verdict"`
	Result     *model.AnalysisResult `json:"result"`
	Report     string                `json:"report"`
	Summary    string                `json:"summary"`
	LLMSummary string                `json:"llm_summary,omitempty"`
}

// AnalyzeText reviews one material. Identical text and product hint
// always produce an identical Review, so the rendered review is safe
// to memoize; the cache is bypassed when the LLM summarizer is active
// because its prose is not deterministic.
func (p *Pipeline) AnalyzeText(ctx context.Context, text, product string) (*Review, error) {
	key := cache.Key(text, product)
	if p.cache != nil && p.summarizer == nil {
		if data, ok := p.cache.Get(key); ok {
			var cached Review
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			p.cache.Delete(key)
		}
	}

	// 1. Run the engine
	result := p.analyzer.Analyze(text, product)

	// 2. Render the report and recommendations
	review := &Review{
		Product: result.ProductDetected,
		Verdict: report.Verdict(result),
		Result:  result,
		Report:  report.RenderIssues(result),
		Summary: report.RenderSummary(result, p.config.Output.IncludeFooter),
	}

	// 3. Generate LLM summary if enabled (AFTER analysis, never affects the result)
	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(ctx, result)
		if err != nil {
			// Don't fail the review, just warn
			fmt.Printf("Warning: LLM summary generation failed: %v\n", err)
		} else {
			review.LLMSummary = summary
		}
	}

	if p.cache != nil && p.summarizer == nil {
		if data, err := json.Marshal(review); err == nil {
			p.cache.Set(key, data, p.cacheTTL)
		}
	}

	return review, nil
}

// AnalyzeFile reads a material from disk and reviews it. HTML files are
// reduced to visible text first.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path, product string) (*Review, error) {
	text, err := ingest.ReadMaterial(path)
	if err != nil {
		return nil, fmt.Errorf("read material: %w", err)
	}
	return p.AnalyzeText(ctx, text, product)
}
