package inventory

import (
	"context"
	"math"

	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/internal/domain/entity"
	"github.com/jhoicas/inventory-tool-api/internal/domain/repository"
)

// MaxQuantity cantidad máxima por movimiento; la existencia se almacena como entero de 32 bits.
const MaxQuantity = math.MaxInt32

// Service casos de uso de disponibilidad y movimientos de existencia.
// Sin estado propio: solo delega en el backend elegido al arrancar.
type Service struct {
	backend repository.InventoryBackend
}

// NewService construye el servicio.
func NewService(backend repository.InventoryBackend) *Service {
	return &Service{backend: backend}
}

// GetAvailability obtiene el producto con su existencia actual.
func (s *Service) GetAvailability(ctx context.Context, productID int64) (*entity.InventoryItem, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.backend.Fetch(ctx, productID)
}

// Reserve descuenta quantity de la existencia. quantity debe estar en [1, MaxQuantity].
func (s *Service) Reserve(ctx context.Context, productID int64, quantity int) error {
	if err := validate(productID, quantity); err != nil {
		return err
	}
	return s.backend.AdjustQuantity(ctx, productID, -quantity)
}

// ReceiveShipment suma quantity a la existencia. quantity debe estar en [1, MaxQuantity].
func (s *Service) ReceiveShipment(ctx context.Context, productID int64, quantity int) error {
	if err := validate(productID, quantity); err != nil {
		return err
	}
	return s.backend.AdjustQuantity(ctx, productID, quantity)
}

// BackendKind nombre del backend en uso.
func (s *Service) BackendKind() string {
	return s.backend.Kind()
}

func validate(productID int64, quantity int) error {
	if productID <= 0 || quantity <= 0 || quantity > MaxQuantity {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToItemResponse arma la respuesta HTTP; el estado se deriva en este momento.
func ToItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	out := &dto.InventoryItemResponse{
		ProductID:   it.ProductID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Status:      string(it.Status()),
	}
	if it.AvailableDate != nil {
		d := it.AvailableDate.Format(entity.DateLayout)
		out.AvailableDate = &d
	}
	return out
}
