package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/model"
	"github.com/sksagor/investment-tracker-backend/internal/repository"
)

// ExportService produces and restores encrypted portfolio backups.
// The payload is the full investment table serialized to JSON and sealed
// as a fernet token; tokens do not expire.
type ExportService struct {
	db             *sql.DB
	investmentRepo *repository.InvestmentRepository
	key            *fernet.Key
	now            func() time.Time
}

// exportPayload is the encrypted backup document.
type exportPayload struct {
	Version     int                `json:"version"`
	ExportedAt  time.Time          `json:"exportedAt"`
	Investments []model.Investment `json:"investments"`
}

const exportVersion = 1

// NewExportService creates a new ExportService. keyStr is the base64
// fernet key from configuration; when empty, export and import return
// apperrors.ErrExportDisabled.
func NewExportService(db *sql.DB, investmentRepo *repository.InvestmentRepository, keyStr string) (*ExportService, error) {
	s := &ExportService{
		db:             db,
		investmentRepo: investmentRepo,
		now:            time.Now,
	}

	if keyStr != "" {
		key, err := fernet.DecodeKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("failed to decode export key: %w", err)
		}
		s.key = key
	}

	return s, nil
}

// Enabled reports whether an export key is configured.
func (s *ExportService) Enabled() bool {
	return s.key != nil
}

// Export serializes all investments and returns them as a fernet token.
func (s *ExportService) Export() ([]byte, error) {
	if s.key == nil {
		return nil, apperrors.ErrExportDisabled
	}

	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	payload := exportPayload{
		Version:     exportVersion,
		ExportedAt:  s.now().UTC(),
		Investments: investments,
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}

	token, err := fernet.EncryptAndSign(doc, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt export payload: %w", err)
	}

	return token, nil
}

// Import verifies and decrypts a previously exported token and replaces
// the store contents with its investments inside a single transaction.
// Returns the number of imported records.
func (s *ExportService) Import(ctx context.Context, token []byte) (int, error) {
	if s.key == nil {
		return 0, apperrors.ErrExportDisabled
	}

	doc := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{s.key})
	if doc == nil {
		return 0, apperrors.ErrInvalidExportToken
	}

	var payload exportPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidExportToken, err)
	}

	if payload.Version != exportVersion {
		return 0, fmt.Errorf("%w: unsupported export version %d", apperrors.ErrInvalidExportToken, payload.Version)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	repo := s.investmentRepo.WithTx(tx)

	if err := repo.DeleteAll(ctx); err != nil {
		return 0, err
	}

	for _, inv := range payload.Investments {
		if err := repo.Insert(ctx, inv); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import transaction: %w", err)
	}

	return len(payload.Investments), nil
}
