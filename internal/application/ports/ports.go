// Package ports define los puertos transversales de la capa de aplicación:
// feed de cambios de colecciones, eventos de dominio y cache.
package ports

import (
	"context"
	"time"
)

// Nombres de las colecciones del almacén de documentos.
const (
	CollectionGreenBeans       = "green_beans"
	CollectionRoastingProfiles = "roasting_profiles"
	CollectionRoastingSessions = "roasting_sessions"
	CollectionSales            = "sales"
	CollectionUsers            = "users"
)

// ChangeFeed recibe el aviso de que una colección de un dueño cambió tras un
// commit. Los observadores releen la instantánea completa y la reparten a las
// sesiones suscritas. Para la colección global de usuarios ownerID va vacío.
type ChangeFeed interface {
	CollectionChanged(collection, ownerID string)
}

// NopFeed descarta los avisos; útil en tests y cuando no hay sesiones vivas.
type NopFeed struct{}

func (NopFeed) CollectionChanged(string, string) {}

// EventPublisher publica eventos de dominio hacia el broker para consumidores
// externos (reporting, alertas). Siempre best-effort: un fallo de publicación
// se registra y no interrumpe la operación que lo originó.
type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, ev SaleRecordedEvent) error
	PublishRoastCompleted(ctx context.Context, ev RoastCompletedEvent) error
	PublishLowStock(ctx context.Context, ev LowStockEvent) error
}

// SaleRecordedEvent se publica al confirmar una venta.
type SaleRecordedEvent struct {
	SaleID        string  `json:"sale_id"`
	OwnerID       string  `json:"owner_id"`
	ProductType   string  `json:"product_type"`
	ProductID     string  `json:"product_id"`
	Quantity      float64 `json:"quantity_kg"`
	TotalAmount   string  `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	SaleDate      string  `json:"sale_date"`
}

// RoastCompletedEvent se publica al registrar una sesión de tueste.
type RoastCompletedEvent struct {
	SessionID       string  `json:"session_id"`
	OwnerID         string  `json:"owner_id"`
	GreenBeanID     string  `json:"green_bean_id"`
	BatchNumber     string  `json:"batch_number"`
	GreenQuantity   float64 `json:"green_quantity_kg"`
	RoastedQuantity float64 `json:"roasted_quantity_kg"`
	RoastDate       string  `json:"roast_date"`
}

// LowStockEvent se publica cuando un consumo deja un lote en o bajo su umbral.
type LowStockEvent struct {
	GreenBeanID string  `json:"green_bean_id"`
	OwnerID     string  `json:"owner_id"`
	Variety     string  `json:"variety"`
	Quantity    float64 `json:"quantity_kg"`
	Threshold   float64 `json:"threshold_kg"`
}

// SummaryCache cachea agregados serializables con TTL (dashboard). Un miss o
// un error de backend se tratan igual: se recalcula.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}
