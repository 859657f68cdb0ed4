package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GioNegri/PedagogIA2/internal/generation"
)

// GeneratedContent is the outcome of a generate-and-save call: the freshly
// generated text plus the history id it was stored under.
type GeneratedContent struct {
	ID    int64  `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContentService runs the generation collaborator and files its output into
// the owner's history. The model call holds no store resources; the record
// is appended only after generation has finished.
type ContentService interface {
	// GenerateAndSave produces content for the request and saves it as a
	// history record owned by ownerEmail.
	GenerateAndSave(ctx context.Context, ownerEmail string, req generation.Request) (*GeneratedContent, error)
}

// ContentServiceImpl implements the ContentService interface.
type ContentServiceImpl struct {
	generator generation.Generator
	history   HistoryService
	logger    *slog.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(
	generator generation.Generator,
	history HistoryService,
	logger *slog.Logger,
) *ContentServiceImpl {
	return &ContentServiceImpl{
		generator: generator,
		history:   history,
		logger:    logger.With("component", "content_service"),
	}
}

// Ensure ContentServiceImpl implements ContentService
var _ ContentService = (*ContentServiceImpl)(nil)

// GenerateAndSave implements ContentService.GenerateAndSave
func (s *ContentServiceImpl) GenerateAndSave(
	ctx context.Context,
	ownerEmail string,
	req generation.Request,
) (*GeneratedContent, error) {
	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.logger.Error("content generation failed",
			"error", err,
			"owner_email", ownerEmail,
			"kind", req.Kind)
		return nil, err
	}

	id, err := s.history.Save(ctx, ownerEmail, req.Kind, result.Title, result.Body)
	if err != nil {
		// The generated text is lost in this case; the caller sees the
		// failure rather than a phantom success.
		return nil, fmt.Errorf("failed to save generated content: %w", err)
	}

	s.logger.Info("content generated and saved",
		"owner_email", ownerEmail,
		"kind", req.Kind,
		"record_id", id)

	return &GeneratedContent{
		ID:    id,
		Kind:  req.Kind,
		Title: result.Title,
		Body:  result.Body,
	}, nil
}
