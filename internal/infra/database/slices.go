package database

import (
	"database/sql"

	"github.com/DioGolang/GoSlices/internal/application/port/outbound"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/DioGolang/GoSlices/pkg/logger"
	"github.com/DioGolang/GoSlices/pkg/metrics"
)

// Slices holds one unit of work per slice. Slices never share repositories.
type Slices struct {
	Users      outbound.UnitOfWork[outbound.UserRepository]
	Products   outbound.UnitOfWork[outbound.ProductRepository]
	Customers  outbound.UnitOfWork[outbound.CustomerRepository]
	Estruturas outbound.UnitOfWork[outbound.EstruturaRepository]
}

// NewMemorySlices gives every slice its own in-memory store.
func NewMemorySlices(bus events.EventDispatcher, log logger.Logger, m metrics.Metrics) Slices {
	return Slices{
		Users: NewUnitOfWork(NewMemoryStore(), func(s *Session[*MemoryHandle]) outbound.UserRepository {
			return NewMemoryUserRepository(s)
		}, bus, log, m),
		Products: NewUnitOfWork(NewMemoryStore(), func(s *Session[*MemoryHandle]) outbound.ProductRepository {
			return NewMemoryProductRepository(s)
		}, bus, log, m),
		Customers: NewUnitOfWork(NewMemoryStore(), func(s *Session[*MemoryHandle]) outbound.CustomerRepository {
			return NewMemoryCustomerRepository(s)
		}, bus, log, m),
		Estruturas: NewUnitOfWork(NewMemoryStore(), func(s *Session[*MemoryHandle]) outbound.EstruturaRepository {
			return NewMemoryEstruturaRepository(s)
		}, bus, log, m),
	}
}

// NewPostgresSlices runs every slice on db; each slice only touches its own tables.
func NewPostgresSlices(db *sql.DB, bus events.EventDispatcher, log logger.Logger, m metrics.Metrics) Slices {
	pg := NewPostgres(db)
	return Slices{
		Users: NewUnitOfWork(pg, func(s *Session[DBTX]) outbound.UserRepository {
			return NewPostgresUserRepository(s)
		}, bus, log, m),
		Products: NewUnitOfWork(pg, func(s *Session[DBTX]) outbound.ProductRepository {
			return NewPostgresProductRepository(s)
		}, bus, log, m),
		Customers: NewUnitOfWork(pg, func(s *Session[DBTX]) outbound.CustomerRepository {
			return NewPostgresCustomerRepository(s)
		}, bus, log, m),
		Estruturas: NewUnitOfWork(pg, func(s *Session[DBTX]) outbound.EstruturaRepository {
			return NewPostgresEstruturaRepository(s)
		}, bus, log, m),
	}
}
