// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Es el adaptador usado en tests y desarrollo sin base de datos; la
// atomicidad por artículo se garantiza con un mutex por artículo más commit
// por etapas en el TxRunner (misma semántica que el bloqueo de fila en SQL).
package memory

import (
	"sync"

	"github.com/invorya/stockledger/internal/domain/entity"
)

// Store contiene el estado compartido de todos los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	items     map[string]*entity.InventoryItem
	skuIndex  map[string]string                      // sku -> item id
	movements map[string][]*entity.InventoryMovement // por artículo, orden de inserción
	alerts    map[string]*entity.StockAlert
	alertIDs  []string // orden de creación
	itemLocks sync.Map // item id -> *sync.Mutex
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		items:     make(map[string]*entity.InventoryItem),
		skuIndex:  make(map[string]string),
		movements: make(map[string][]*entity.InventoryMovement),
		alerts:    make(map[string]*entity.StockAlert),
	}
}

// lockFor devuelve el mutex exclusivo del artículo (se crea perezosamente).
// Artículos distintos usan mutexes distintos: no hay lock global de movimientos.
func (s *Store) lockFor(itemID string) *sync.Mutex {
	actual, _ := s.itemLocks.LoadOrStore(itemID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// cloneItem copia el snapshot para que los callers nunca compartan punteros
// con el estado interno del store.
func cloneItem(item *entity.InventoryItem) *entity.InventoryItem {
	c := *item
	if item.LastRestocked != nil {
		t := *item.LastRestocked
		c.LastRestocked = &t
	}
	return &c
}

func cloneMovement(m *entity.InventoryMovement) *entity.InventoryMovement {
	c := *m
	return &c
}

func cloneAlert(a *entity.StockAlert) *entity.StockAlert {
	c := *a
	if a.ResolvedAt != nil {
		t := *a.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}
