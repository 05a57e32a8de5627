package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mkrol/cvsift/internal/analyze"
	"github.com/mkrol/cvsift/internal/parser"
	"github.com/mkrol/cvsift/internal/scoring"
	"github.com/mkrol/cvsift/internal/section"
	"github.com/mkrol/cvsift/internal/store"
	"github.com/mkrol/cvsift/internal/webhook"
)

// Worker processes a single CV job end to end: parse, detect sections,
// score, and (when enabled) generate LLM feedback.
type Worker struct {
	detector *section.Detector
	analyzer *analyze.Analyzer
	results  *store.Store
	hook     *webhook.Client
	log      *slog.Logger
}

func NewWorker(detector *section.Detector, analyzer *analyze.Analyzer, results *store.Store, hook *webhook.Client, log *slog.Logger) *Worker {
	return &Worker{
		detector: detector,
		analyzer: analyzer,
		results:  results,
		hook:     hook,
		log:      log,
	}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	text, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("no extractable text")
		job.AddError("no extractable text")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Dedup on the parsed text, not the raw bytes, so the same CV
	// exported twice with different metadata still matches.
	job.SetContentHash(ContentHashHex([]byte(text)))
	if existing := w.results.FindByHash(job.ContentHash); existing != nil {
		log.Info("duplicate document, reusing analysis", "existing_doc_id", existing.DocID)
		job.SetDocID(existing.DocID)
		job.SetSections(len(existing.Sections))
		job.SetOverallScore(existing.Scorecard.Overall)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: Section detection
	job.SetStatus(StatusDetecting, "detecting sections")
	sections := w.detector.Detect(text)
	job.SetSections(len(sections))
	log.Info("sections detected", "count", len(sections))

	// Phase 3: Scoring
	job.SetStatus(StatusScoring, "scoring")
	scorecard := scoring.Score(sections)
	job.SetOverallScore(scorecard.Overall)

	// Phase 4: LLM feedback (optional).
	var feedback *analyze.Feedback
	partial := false
	if w.analyzer.Enabled() {
		job.SetStatus(StatusAnalyzing, "analyzing")
		feedback, err = w.analyzeWithRetry(ctx, log, text, sections)
		if err != nil {
			log.Error("analysis failed", "error", err)
			job.AddError(fmt.Sprintf("analyze: %s", err))
			partial = true
		} else {
			job.SetProblems(len(feedback.Problems))
			partial = feedback.Partial
		}
	}

	title := job.Title
	if title == "" {
		title = firstLine(text)
	}
	res := &store.AnalysisResult{
		DocID:       job.DocID,
		Filename:    job.Filename,
		Title:       title,
		ContentHash: job.ContentHash,
		CreatedAt:   time.Now(),
		Sections:    sections,
		Scorecard:   scorecard,
		Feedback:    feedback,
	}
	w.results.Put(res)

	if w.hook.Enabled() && !job.SkipWebhook {
		if err := w.hook.Notify(ctx, res); err != nil {
			log.Warn("webhook delivery failed", "error", err)
			job.AddError(fmt.Sprintf("webhook: %s", err))
		}
	}

	if partial {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("job complete", "sections", len(sections), "overall", scorecard.Overall, "partial", partial)
}

func (w *Worker) analyzeWithRetry(ctx context.Context, log *slog.Logger, text string, sections []section.Section) (*analyze.Feedback, error) {
	var feedback *analyze.Feedback
	var lastErr error
	for attempt := range MaxRetries {
		feedback, lastErr = w.analyzer.Analyze(ctx, text, sections)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable analysis error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return feedback, nil
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
