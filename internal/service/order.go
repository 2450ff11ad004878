package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/repository"
)

//go:generate mockery --name OrderBroadcaster --output ../mocks
type OrderBroadcaster interface {
	BroadcastOrder(restaurantID string, order *dto.OrderResponse)
}

type OrderService struct {
	repo        repository.Repository
	access      *AccessService
	strict      bool
	broadcaster OrderBroadcaster
}

func NewOrderService(repo repository.Repository, access *AccessService, strictTransitions bool) *OrderService {
	return &OrderService{
		repo:   repo,
		access: access,
		strict: strictTransitions,
	}
}

// SetBroadcaster wires the live staff order feed; optional.
func (s *OrderService) SetBroadcaster(broadcaster OrderBroadcaster) {
	s.broadcaster = broadcaster
}

// Create places a customer order for a table code. The restaurant is
// derived from the resolved table, never chosen by the caller. Item
// references that do not resolve within that restaurant are skipped, not
// rejected; the order plus all resolved items persist atomically. Unit
// prices are snapshotted from the menu at this moment.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	table, err := s.access.AuthorizePublic(ctx, req.TableCode)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ItemID)
	}
	menuItems, err := s.repo.MenuItem().FindByIDs(ctx, table.RestaurantID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}
	byID := make(map[string]*domain.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	tableID := table.ID
	order := &domain.Order{
		RestaurantID: table.RestaurantID,
		TableID:      &tableID,
		Status:       domain.StatusPending,
		Notes:        req.Notes,
	}
	for _, it := range req.Items {
		menuItem, ok := byID[it.ItemID]
		if !ok {
			continue
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Qty:        qty,
			UnitPrice:  menuItem.Price,
			MenuItem:   menuItem,
		})
	}

	if err := s.repo.Order().CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.Table = table

	resp := dto.FromOrder(order)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastOrder(order.RestaurantID, resp)
	}
	return resp, nil
}

// CustomerOrders lists a table's orders, newest first.
func (s *OrderService) CustomerOrders(ctx context.Context, tableCode string) ([]dto.OrderResponse, error) {
	table, err := s.access.AuthorizePublic(ctx, tableCode)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Order().ListByTable(ctx, table.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromOrders(orders), nil
}

// List returns tenant-scoped orders for staff, newest first.
func (s *OrderService) List(ctx context.Context, filter *domain.OrderFilter) ([]dto.OrderResponse, error) {
	if filter.Status != "" && !domain.IsValidStatus(string(filter.Status)) {
		return nil, ErrInvalidStatus
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	orders, err := s.repo.Order().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromOrders(orders), nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.Order().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return dto.FromOrder(order), nil
}

// UpdateStatus moves an order through its lifecycle. Strict mode enforces
// forward-only transitions (CANCELLED allowed from any non-terminal state)
// with a guarded write, so a concurrent transition loses cleanly instead of
// resurrecting a terminal order. Lenient mode accepts any enumerated value.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*dto.OrderResponse, error) {
	if !domain.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	to := domain.OrderStatus(status)

	order, err := s.repo.Order().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if s.strict {
		if !domain.CanTransition(order.Status, to) {
			return nil, ErrInvalidTransition
		}
		affected, err := s.repo.Order().UpdateStatusGuard(ctx, order.ID, order.Status, to)
		if err != nil {
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}
		if affected == 0 {
			return nil, ErrInvalidTransition
		}
	} else {
		if err := s.repo.Order().UpdateStatus(ctx, order.ID, to); err != nil {
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}
	}

	order.Status = to
	return dto.FromOrder(order), nil
}
