package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/config"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
	"github.com/qrorder/qr-order-api/internal/utils"
)

type TableService struct {
	repo    repository.Repository
	qrStore QRStore
	cfg     *config.Config
}

func NewTableService(repo repository.Repository, qrStore QRStore, cfg *config.Config) *TableService {
	return &TableService{
		repo:    repo,
		qrStore: qrStore,
		cfg:     cfg,
	}
}

func (s *TableService) Create(ctx context.Context, req dto.CreateTableRequest) (*dto.TableResponse, error) {
	restaurantID, err := utils.GetRestaurantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if restaurantID == "" {
		return nil, ErrRestaurantNotFound
	}

	table := &domain.Table{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Code:         req.Code,
	}
	if _, err := s.repo.Table().Create(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	targetURL, err := s.regenerateQR(ctx, table)
	if err != nil {
		return nil, err
	}

	resp := dto.FromTable(table, targetURL)
	return &resp, nil
}

func (s *TableService) Update(ctx context.Context, id string, req dto.UpdateTableRequest) (*dto.TableResponse, error) {
	table, err := s.repo.Table().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != table.Name {
		table.Name = *req.Name
		changed = true
	}
	if req.Code != nil && *req.Code != table.Code {
		table.Code = *req.Code
		changed = true
	}

	if err := s.repo.Table().Update(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}

	// Name or code changes invalidate the routable image.
	var targetURL string
	if changed {
		targetURL, err = s.regenerateQR(ctx, table)
		if err != nil {
			return nil, err
		}
	} else {
		targetURL, err = s.TargetURL(ctx, table)
		if err != nil {
			return nil, err
		}
	}

	resp := dto.FromTable(table, targetURL)
	return &resp, nil
}

func (s *TableService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Table().GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return err
	}
	return s.repo.Table().Delete(ctx, id)
}

func (s *TableService) GetByID(ctx context.Context, id string) (*dto.TableResponse, error) {
	table, err := s.repo.Table().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	targetURL, err := s.TargetURL(ctx, table)
	if err != nil {
		return nil, err
	}
	resp := dto.FromTable(table, targetURL)
	return &resp, nil
}

func (s *TableService) List(ctx context.Context) ([]dto.TableResponse, error) {
	tables, err := s.repo.Table().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TableResponse, len(tables))
	for i := range tables {
		targetURL, err := s.TargetURL(ctx, &tables[i])
		if err != nil {
			return nil, err
		}
		responses[i] = dto.FromTable(&tables[i], targetURL)
	}
	return responses, nil
}

// TargetURL builds the table's public ordering URL from its restaurant's
// config. A missing config row falls back to localhost; it never falls back
// to another restaurant's config.
func (s *TableService) TargetURL(ctx context.Context, table *domain.Table) (string, error) {
	scheme := s.cfg.SiteScheme
	host := ""

	restaurantConfig, err := s.repo.Config().GetByRestaurantID(ctx, table.RestaurantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	} else {
		host = restaurantConfig.ServerIP
		if restaurantConfig.Scheme != "" {
			scheme = restaurantConfig.Scheme
		}
	}

	return BuildTableURL(scheme, host, s.cfg.Debug, table.Code), nil
}

func (s *TableService) regenerateQR(ctx context.Context, table *domain.Table) (string, error) {
	targetURL, err := s.TargetURL(ctx, table)
	if err != nil {
		return "", err
	}

	png, err := EncodeQR(targetURL)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("qrcodes/qr_%s_%s.png", table.RestaurantID, table.Code)
	if err := s.qrStore.Put(ctx, key, png); err != nil {
		return "", err
	}

	table.QRImageKey = key
	if err := s.repo.Table().Update(ctx, table); err != nil {
		return "", fmt.Errorf("failed to record QR image key: %w", err)
	}
	return targetURL, nil
}
