package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

const documentName = "sample.pdf"

// EsignService sequences the end-to-end flow: render and persist the
// document, then acquire a token and drive the two-phase submission.
type EsignService struct {
	renderer ports.DocumentRenderer
	tokens   ports.TokenSource
	sign     ports.SignClient
	events   ports.EventPublisher

	fs        afero.Fs
	outputDir string
	log       *logrus.Logger
}

// NewEsignService creates a new e-sign service
func NewEsignService(
	renderer ports.DocumentRenderer,
	tokens ports.TokenSource,
	sign ports.SignClient,
	events ports.EventPublisher,
	fs afero.Fs,
	outputDir string,
	log *logrus.Logger,
) *EsignService {
	return &EsignService{
		renderer:  renderer,
		tokens:    tokens,
		sign:      sign,
		events:    events,
		fs:        fs,
		outputDir: outputDir,
		log:       log,
	}
}

// DocumentPath returns the location of the prepared document.
func (s *EsignService) DocumentPath() string {
	return filepath.Join(s.outputDir, documentName)
}

// GeneratePDF renders the document, persists it for a later upload and
// returns the bytes for the HTTP response.
func (s *EsignService) GeneratePDF(ctx context.Context) ([]byte, error) {
	document, err := s.renderer.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	if err := s.fs.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.DocumentPath(), document, 0o644); err != nil {
		return nil, fmt.Errorf("failed to persist document: %w", err)
	}

	return document, nil
}

// Upload submits the prepared document to the signature provider for the
// given recipient. The document must exist before any token is acquired;
// a single token is shared by both submission phases.
func (s *EsignService) Upload(ctx context.Context, recipientEmail string) (*core.SubmissionResult, error) {
	exists, err := afero.Exists(s.fs, s.DocumentPath())
	if err != nil {
		return nil, fmt.Errorf("failed to check for document: %w", err)
	}
	if !exists {
		return nil, core.ErrDocumentNotFound
	}

	document, err := afero.ReadFile(s.fs, s.DocumentPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.sign.Submit(ctx, document, recipientEmail, token)
	if err != nil {
		return nil, err
	}

	// The submission already succeeded; a lost event is not worth
	// failing the request over.
	if err := s.events.PublishSubmitted(ctx, result.RequestID, recipientEmail); err != nil {
		s.log.WithError(err).Warn("failed to publish submission event")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": result.RequestID,
		"recipient":  recipientEmail,
	}).Info("signature request submitted")

	return result, nil
}
