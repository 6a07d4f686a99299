package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/pipeline"
)

// Reviewer reviews one material file
type Reviewer interface {
	AnalyzeFile(ctx context.Context, path, product string) (*pipeline.Review, error)
}

// ReviewJob reviews a single material file
type ReviewJob struct {
	Path     string
	Product  string
	Reviewer Reviewer
}

// Execute runs the review
func (j *ReviewJob) Execute(ctx context.Context) Result {
	review, err := j.Reviewer.AnalyzeFile(ctx, j.Path, j.Product)
	return &ReviewResult{
		Path:   j.Path,
		Review: review,
		Error:  err,
	}
}

// ReviewResult is the outcome of one material review
type ReviewResult struct {
	Path   string
	Review *pipeline.Review
	Error  error
}

// Err returns the review error, if any
func (r *ReviewResult) Err() error {
	return r.Error
}

// BatchProcessor reviews multiple material files concurrently
type BatchProcessor struct {
	reviewer    Reviewer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(reviewer Reviewer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		reviewer:    reviewer,
		concurrency: concurrency,
	}
}

// ProcessPaths reviews the given material files concurrently. The
// product hint applies to every file; empty means auto-detect per file.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, product string) []*ReviewResult {
	if len(paths) == 0 {
		return []*ReviewResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ReviewJob{
			Path:     path,
			Product:  product,
			Reviewer: b.reviewer,
		})
	}

	results := pool.Wait()

	reviewResults := make([]*ReviewResult, len(results))
	for i, result := range results {
		reviewResults[i] = result.(*ReviewResult)
	}

	return reviewResults
}

// ProcessFile reads material paths from a manifest file and reviews
// them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, manifestPath, product string) ([]*ReviewResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths, product), nil
}

// ReadPathsFromFile reads material paths from a file (one per line).
// Blank lines and #-comments are skipped; duplicates are dropped.
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
