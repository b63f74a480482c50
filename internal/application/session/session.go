// Package session expone el núcleo del inventario (catálogo, ledger y dashboard) como un
// objeto de contexto explícito. Una sesión tiene un único escritor lógico: todas las operaciones
// se serializan y, tras cada mutación, se persisten las claves afectadas.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/inventario-tracker/internal/application/analytics"
	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/inventario-tracker/internal/application/ports"
	"github.com/jhoicas/inventario-tracker/internal/application/usecase"
	"github.com/jhoicas/inventario-tracker/internal/domain"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

const defaultSaveTimeout = 5 * time.Second

// CatalogStore catálogo que además puede reemplazarse entero al cargar la sesión.
type CatalogStore interface {
	repository.ProductRepository
	Replace(products []*entity.Product)
}

// LedgerStore ledger que además puede reemplazarse entero al cargar la sesión.
type LedgerStore interface {
	repository.MovementRepository
	Replace(movements []*entity.Movement)
}

// StatePersister carga y guarda los dos documentos del estado.
type StatePersister interface {
	LoadProducts(ctx context.Context) ([]*entity.Product, error)
	LoadMovements(ctx context.Context) ([]*entity.Movement, error)
	SaveProducts(ctx context.Context, products []*entity.Product) error
	SaveMovements(ctx context.Context, movements []*entity.Movement) error
}

// Deps dependencias de la sesión. Products, Movements y TxRunner son obligatorias.
type Deps struct {
	Products  CatalogStore
	Movements LedgerStore
	TxRunner  inventory.TxRunner
	State     StatePersister // nil = sin persistencia
	Notifier  ports.Notifier
	Metrics   ports.InventoryMetrics
	Logger    *logger.Logger
	Now       func() time.Time

	Backend         string // nombre del backend de persistencia, solo para logs
	RecentMovements int
	SaveTimeout     time.Duration
}

// Session es el contexto del inventario que reciben los adaptadores de presentación.
type Session struct {
	mu     sync.Mutex
	opened bool

	products  CatalogStore
	movements LedgerStore
	state     StatePersister
	notifier  ports.Notifier
	metrics   ports.InventoryMetrics
	log       *logger.Logger

	backend     string
	saveTimeout time.Duration

	productUC  *usecase.ProductUseCase
	movementUC *inventory.RecordMovementUseCase
	queryUC    *inventory.MovementQueryUseCase
	dashboard  *analytics.DashboardUseCase
}

// New construye la sesión sin cargarla. Hay que llamar a Open antes de usarla.
func New(deps Deps) *Session {
	if deps.Notifier == nil {
		deps.Notifier = ports.NopNotifier{}
	}
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.SaveTimeout <= 0 {
		deps.SaveTimeout = defaultSaveTimeout
	}
	return &Session{
		products:    deps.Products,
		movements:   deps.Movements,
		state:       deps.State,
		notifier:    deps.Notifier,
		metrics:     deps.Metrics,
		log:         deps.Logger.WithComponent("session"),
		backend:     deps.Backend,
		saveTimeout: deps.SaveTimeout,
		productUC:   usecase.NewProductUseCase(deps.Products, deps.Now),
		movementUC:  inventory.NewRecordMovementUseCase(deps.TxRunner, deps.Products, deps.Now),
		queryUC:     inventory.NewMovementQueryUseCase(deps.Movements, deps.Products),
		dashboard:   analytics.NewDashboardUseCase(deps.Products, deps.Movements, deps.RecentMovements, deps.Now),
	}
}

// Open carga productos y movimientos desde la persistencia y habilita la sesión.
// Un error de carga deja la sesión cerrada.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil {
		products, err := s.state.LoadProducts(ctx)
		if err != nil {
			return fmt.Errorf("abrir sesión: %w", err)
		}
		movements, err := s.state.LoadMovements(ctx)
		if err != nil {
			return fmt.Errorf("abrir sesión: %w", err)
		}
		s.products.Replace(products)
		s.movements.Replace(movements)
		s.log.Info().
			Int("products", len(products)).
			Int("movements", len(movements)).
			Msg("estado cargado")
	}
	s.opened = true
	return nil
}

// mustBeOpen entra en pánico si la sesión no fue abierta: es un error de programación del llamador.
func (s *Session) mustBeOpen() {
	if !s.opened {
		panic(domain.ErrSessionNotOpen)
	}
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// AddProduct crea un producto, persiste el catálogo y confirma al usuario.
func (s *Session) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	out, err := s.productUC.Create(in)
	if err != nil {
		return nil, err
	}
	s.persistProducts(ctx)
	s.notifier.Notify(ports.LevelInfo, "Producto agregado con éxito")
	return out, nil
}

// UpdateProduct mezcla los campos dados. Devuelve domain.ErrNotFound si el ID no existe (sin cambios).
func (s *Session) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	out, err := s.productUC.Update(id, in)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	s.persistProducts(ctx)
	s.notifier.Notify(ports.LevelInfo, "Producto actualizado con éxito")
	return out, nil
}

// DeleteProduct elimina el producto; false si no existía (no-op).
// Los movimientos históricos se conservan y se resuelven como producto desconocido.
func (s *Session) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	deleted, err := s.productUC.Delete(id)
	if err != nil || !deleted {
		return false, err
	}
	s.persistProducts(ctx)
	s.notifier.Notify(ports.LevelInfo, "Producto eliminado con éxito")
	return true, nil
}

// GetProduct devuelve domain.ErrNotFound si el ID no existe.
func (s *Session) GetProduct(_ context.Context, id string) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	out, err := s.productUC.GetByID(id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// ListProducts lista el catálogo con búsqueda y filtro de stock bajo.
func (s *Session) ListProducts(_ context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	return s.productUC.List(filter)
}

// Products devuelve una copia del catálogo completo (exportación).
func (s *Session) Products(_ context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	return s.productUC.All()
}

// ImportResult resultado de una carga masiva de productos.
type ImportResult struct {
	Imported int
	Rejected []RowRejection
}

// RowRejection fila no importada (Row empieza en 1).
type RowRejection struct {
	Row  int
	Name string
	Err  error
}

// ImportProducts agrega los productos válidos y guarda el catálogo una sola vez al final.
// A diferencia de las operaciones interactivas, un fallo al guardar se devuelve al llamador
// junto con el resultado parcial.
func (s *Session) ImportProducts(ctx context.Context, rows []dto.CreateProductRequest) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	res := &ImportResult{}
	for i, row := range rows {
		err := validateNewProduct(row)
		if err == nil {
			_, err = s.productUC.Create(row)
		}
		if err != nil {
			res.Rejected = append(res.Rejected, RowRejection{Row: i + 1, Name: row.Name, Err: err})
			continue
		}
		res.Imported++
	}
	if res.Imported == 0 {
		return res, nil
	}
	if err := s.saveProducts(ctx); err != nil {
		s.reportPersist(repository.KeyProducts, err)
		return res, fmt.Errorf("guardar catálogo importado: %w", err)
	}
	s.notifier.Notify(ports.LevelInfo, fmt.Sprintf("%d productos importados con éxito", res.Imported))
	return res, nil
}

func validateNewProduct(in dto.CreateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" || in.Quantity < 0 || in.MinQuantity < 0 ||
		in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// ── Ledger ────────────────────────────────────────────────────────────────────

// RecordMovement aplica la conciliación. Rechazo por stock insuficiente: error notificado al usuario
// y ningún cambio de estado. Producto inexistente: domain.ErrNotFound sin notificación.
// Tras un movimiento aplicado que deja la cantidad en o bajo el mínimo se emite la alerta de stock bajo.
func (s *Session) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	res, err := s.movementUC.RecordMovement(ctx, in)
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		s.metrics.MovementRejected("insufficient_stock")
		s.notifier.Notify(ports.LevelError, "¡Cantidad insuficiente en stock!")
		return nil, err
	case errors.Is(err, domain.ErrInvalidInput):
		s.metrics.MovementRejected("invalid_input")
		return nil, err
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.MovementRejected("unknown_product")
		return nil, err
	case err != nil:
		return nil, err
	}

	s.metrics.MovementApplied(res.Movement.Type)
	s.persistProducts(ctx)
	s.persistMovements(ctx)

	if res.LowStock {
		s.metrics.LowStockAlert()
		s.notifier.Notify(ports.LevelError, fmt.Sprintf("Alerta: stock bajo para %s!", res.Movement.ProductName))
	}
	return res, nil
}

// ListMovements devuelve hasta limit movimientos, el más reciente primero.
func (s *Session) ListMovements(_ context.Context, limit int) (*dto.MovementListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	return s.queryUC.List(limit)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardStats recalcula las estadísticas sobre el estado actual.
func (s *Session) DashboardStats(_ context.Context) (*dto.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	return s.dashboard.GetStats()
}

// DailySeries serie diaria de ventas/compras de los últimos days días.
func (s *Session) DailySeries(_ context.Context, days int) (*dto.DailySeries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	return s.dashboard.DailySeries(days)
}

// ── Persistencia ──────────────────────────────────────────────────────────────
// Efecto secundario síncrono tras cada mutación. Un fallo se registra y se cuenta,
// pero el estado en memoria sigue siendo la fuente de verdad (sin rollback).

func (s *Session) persistProducts(ctx context.Context) {
	s.reportPersist(repository.KeyProducts, s.saveProducts(ctx))
}

func (s *Session) saveProducts(ctx context.Context) error {
	if s.state == nil {
		return nil
	}
	products, err := s.products.List()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	return s.state.SaveProducts(ctx, products)
}

func (s *Session) persistMovements(ctx context.Context) {
	if s.state == nil {
		return
	}
	movements, err := s.movements.List()
	if err == nil {
		ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
		defer cancel()
		err = s.state.SaveMovements(ctx, movements)
	}
	s.reportPersist(repository.KeyMovements, err)
}

func (s *Session) reportPersist(key string, err error) {
	if err == nil {
		return
	}
	s.metrics.PersistFailed(key)
	s.log.Error().Err(err).Str("key", key).Str("backend", s.backend).Msg("no se pudo persistir el estado")
}
