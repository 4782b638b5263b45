package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockledger/internal/domain"
	"github.com/invorya/stockledger/internal/domain/entity"
	"github.com/invorya/stockledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, sku, name, description, category, quantity, location,
		minimum_stock_level, reorder_point, unit_cost, unit_price, supplier,
		last_restocked, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo. El SKU tiene constraint único.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Description, item.Category,
		item.Quantity, item.Location, item.MinimumStockLevel, item.ReorderPoint,
		item.UnitCost, item.UnitPrice, item.Supplier,
		item.LastRestocked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetBySKU obtiene un artículo por su SKU. Devuelve nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get item by sku")
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *ItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
}

// Update actualiza los campos no controlados por el ledger.
// Quantity, Location y LastRestocked no aparecen en el SET a propósito.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, description = $3, category = $4, minimum_stock_level = $5,
		    reorder_point = $6, unit_cost = $7, unit_price = $8, supplier = $9,
		    updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Category, item.MinimumStockLevel,
		item.ReorderPoint, item.UnitCost, item.UnitPrice, item.Supplier, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// UpdateStock persiste el resultado de un movimiento: cantidad, ubicación,
// último reabastecimiento y fecha de actualización. Solo lo invoca el ledger.
func (r *ItemRepo) UpdateStock(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET quantity = $2, location = $3, last_restocked = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.Location, item.LastRestocked, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Search busca coincidencia parcial sin distinguir mayúsculas sobre nombre, SKU y descripción.
func (r *ItemRepo) Search(query string, limit, offset int) ([]*entity.InventoryItem, error) {
	sql := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE name ILIKE '%' || $1 || '%'
		   OR sku ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		ORDER BY sku
		LIMIT $2 OFFSET $3`
	return r.scanMany(sql, "search items", query, limit, offset)
}

// ListByCategory lista los artículos de una categoría.
func (r *ItemRepo) ListByCategory(category string, limit, offset int) ([]*entity.InventoryItem, error) {
	sql := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE lower(category) = lower($1)
		ORDER BY sku
		LIMIT $2 OFFSET $3`
	return r.scanMany(sql, "list items by category", category, limit, offset)
}

// List lista todos los artículos con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	sql := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		ORDER BY sku
		LIMIT $1 OFFSET $2`
	return r.scanMany(sql, "list items", limit, offset)
}

// Delete elimina un artículo. Los movimientos y alertas se conservan (auditoría).
func (r *ItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := row.Scan(
		&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category,
		&item.Quantity, &item.Location, &item.MinimumStockLevel, &item.ReorderPoint,
		&item.UnitCost, &item.UnitPrice, &item.Supplier,
		&item.LastRestocked, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

func (r *ItemRepo) scanMany(sql, op string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.SKU, &item.Name, &item.Description, &item.Category,
			&item.Quantity, &item.Location, &item.MinimumStockLevel, &item.ReorderPoint,
			&item.UnitCost, &item.UnitPrice, &item.Supplier,
			&item.LastRestocked, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
