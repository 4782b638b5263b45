package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/stockledger/internal/application/dto"
	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos de inventario.
// Quantity y Location se manejan vía el ledger de movimientos, nunca aquí.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un nuevo artículo. El SKU debe ser único y la cantidad inicial >= 0.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 || in.MinimumStockLevel < 0 || in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.LessThan(decimal.Zero) || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:                uuid.New().String(),
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		Quantity:          in.Quantity,
		Location:          in.Location,
		MinimumStockLevel: in.MinimumStockLevel,
		ReorderPoint:      in.ReorderPoint,
		UnitCost:          in.UnitCost,
		UnitPrice:         in.UnitPrice,
		Supplier:          in.Supplier,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	// Si nace con existencias, cuenta como primer reabastecimiento
	if in.Quantity > 0 {
		item.LastRestocked = &now
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	resp := dto.NewItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	resp := dto.NewItemResponse(item)
	return &resp, nil
}

// Update actualiza campos parciales de un artículo.
// No permite modificar Quantity ni Location (se manejan vía movimientos).
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.MinimumStockLevel != nil {
		if *in.MinimumStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumStockLevel = *in.MinimumStockLevel
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCost = *in.UnitCost
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	resp := dto.NewItemResponse(item)
	return &resp, nil
}

// Delete elimina un artículo de forma irreversible.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista artículos con paginación. Si search o category vienen definidos, filtra.
// search hace coincidencia parcial (sin distinguir mayúsculas) sobre nombre, SKU y descripción.
func (uc *ItemUseCase) List(search, category string, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()

	var (
		items []*entity.InventoryItem
		err   error
	)
	switch {
	case search != "":
		items, err = uc.repo.Search(search, page.Limit, page.Offset)
	case category != "":
		items, err = uc.repo.ListByCategory(category, page.Limit, page.Offset)
	default:
		items, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewItemResponse(item))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(out)},
	}, nil
}
