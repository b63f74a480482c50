package ports

// InventoryMetrics recibe los eventos contables del núcleo (implementado con Prometheus en infraestructura).
type InventoryMetrics interface {
	MovementApplied(movementType string)
	MovementRejected(reason string)
	LowStockAlert()
	PersistFailed(key string)
}

// NopMetrics no registra nada.
type NopMetrics struct{}

func (NopMetrics) MovementApplied(string)  {}
func (NopMetrics) MovementRejected(string) {}
func (NopMetrics) LowStockAlert()          {}
func (NopMetrics) PersistFailed(string)    {}
