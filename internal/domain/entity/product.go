package entity

import (
	"time"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/DioGolang/GoSlices/pkg/events"
	"github.com/google/uuid"
)

type Product struct {
	Root
	name          string
	description   string
	price         Money
	stockQuantity int
	isActive      bool
	createdBy     *uuid.UUID
	createdAt     time.Time
	updatedAt     *time.Time
}

type ProductState struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         float64
	Currency      string
	StockQuantity int
	IsActive      bool
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	Revision      int
}

func validateDetails(v *violations, name, description string) {
	v.requireName("name", name)
	if len(description) > MaxDescriptionLength {
		v.add("description", "must be at most 500 characters")
	}
}

func validateStock(v *violations, stock int) {
	if stock < 0 {
		v.add("stock_quantity", "cannot be negative")
	}
}

// NewProduct creates an active product. An empty currency defaults to USD.
func NewProduct(name, description string, price float64, currency string, stock int, createdBy *uuid.UUID) (*Product, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	var v violations
	validateDetails(&v, name, description)
	validateStock(&v, stock)
	money, moneyErr := NewMoney(price, currency)
	if moneyErr != nil {
		for _, vi := range apperr.ViolationsOf(moneyErr) {
			v.add(vi.Field, vi.Message)
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	p := &Product{
		Root:          newRoot(uuid.New(), 0),
		name:          name,
		description:   description,
		price:         money,
		stockQuantity: stock,
		isActive:      true,
		createdBy:     createdBy,
		createdAt:     time.Now().UTC(),
	}
	created := ProductCreated{
		Header:    events.NewHeader(EventProductCreated, p.ID().String(), p.createdAt),
		ProductID: p.ID().String(),
		Name:      p.name,
		Price:     money.Amount(),
		Currency:  money.Currency(),
		Stock:     stock,
	}
	if createdBy != nil {
		created.CreatedBy = createdBy.String()
	}
	p.Record(created)
	return p, nil
}

func RestoreProduct(s ProductState) *Product {
	return &Product{
		Root:          newRoot(s.ID, s.Revision),
		name:          s.Name,
		description:   s.Description,
		price:         Money{amount: s.Price, currency: s.Currency},
		stockQuantity: s.StockQuantity,
		isActive:      s.IsActive,
		createdBy:     s.CreatedBy,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (p *Product) UpdateDetails(name, description string) error {
	if !p.isActive {
		return notActive("product")
	}
	var v violations
	validateDetails(&v, name, description)
	if err := v.err(); err != nil {
		return err
	}
	now := p.touch()
	p.name = name
	p.description = description
	p.Record(ProductUpdated{
		Header:      events.NewHeader(EventProductUpdated, p.ID().String(), now),
		ProductID:   p.ID().String(),
		Name:        name,
		Description: description,
	})
	return nil
}

func (p *Product) UpdateStock(quantity int) error {
	if !p.isActive {
		return notActive("product")
	}
	var v violations
	validateStock(&v, quantity)
	if err := v.err(); err != nil {
		return err
	}
	previous := p.stockQuantity
	now := p.touch()
	p.stockQuantity = quantity
	p.Record(ProductStockChanged{
		Header:        events.NewHeader(EventProductStockChanged, p.ID().String(), now),
		ProductID:     p.ID().String(),
		PreviousStock: previous,
		NewStock:      quantity,
	})
	return nil
}

// UpdatePrice keeps the current currency when currency is empty.
func (p *Product) UpdatePrice(amount float64, currency string) error {
	if !p.isActive {
		return notActive("product")
	}
	if currency == "" {
		currency = p.price.Currency()
	}
	money, err := NewMoney(amount, currency)
	if err != nil {
		return err
	}
	previous := p.price
	now := p.touch()
	p.price = money
	p.Record(ProductPriceChanged{
		Header:        events.NewHeader(EventProductPriceChanged, p.ID().String(), now),
		ProductID:     p.ID().String(),
		PreviousPrice: previous.Amount(),
		NewPrice:      money.Amount(),
		Currency:      money.Currency(),
	})
	return nil
}

func (p *Product) Deactivate() error {
	if !p.isActive {
		return notActive("product")
	}
	now := p.touch()
	p.isActive = false
	p.Record(ProductDeactivated{
		Header:    events.NewHeader(EventProductDeactivated, p.ID().String(), now),
		ProductID: p.ID().String(),
	})
	return nil
}

// IsAvailable reports whether the product is active with at least quantity units in stock.
func (p *Product) IsAvailable(quantity int) bool {
	return p.isActive && quantity > 0 && p.stockQuantity >= quantity
}

func (p *Product) touch() time.Time {
	now := time.Now().UTC()
	p.updatedAt = &now
	return now
}

func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) Price() Money          { return p.price }
func (p *Product) StockQuantity() int    { return p.stockQuantity }
func (p *Product) IsActive() bool        { return p.isActive }
func (p *Product) CreatedBy() *uuid.UUID { return p.createdBy }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() *time.Time { return p.updatedAt }

func (p *Product) State() ProductState {
	return ProductState{
		ID:            p.ID(),
		Name:          p.name,
		Description:   p.description,
		Price:         p.price.Amount(),
		Currency:      p.price.Currency(),
		StockQuantity: p.stockQuantity,
		IsActive:      p.isActive,
		CreatedBy:     p.createdBy,
		CreatedAt:     p.createdAt,
		UpdatedAt:     p.updatedAt,
		Revision:      p.Revision(),
	}
}
