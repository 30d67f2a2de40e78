// internal/services/mocks_test.go
package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
)

// In-memory repository doubles. They mirror the gorm-backed contracts:
// missing rows surface as gorm.ErrRecordNotFound and relations come back
// populated the way Preload would return them.

type mockCurrencyRepo struct {
	currencies map[uint]models.Currency
	nextID     uint
	used       map[uint]bool
}

func newMockCurrencyRepo() *mockCurrencyRepo {
	return &mockCurrencyRepo{
		currencies: make(map[uint]models.Currency),
		used:       make(map[uint]bool),
	}
}

func (m *mockCurrencyRepo) seed(code, name, symbol string) models.Currency {
	m.nextID++
	currency := models.Currency{
		BaseModel: models.BaseModel{ID: m.nextID},
		Code:      code,
		Name:      name,
		Symbol:    symbol,
	}
	m.currencies[currency.ID] = currency
	return currency
}

func (m *mockCurrencyRepo) FindAll() ([]models.Currency, error) {
	ids := make([]uint, 0, len(m.currencies))
	for id := range m.currencies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	currencies := make([]models.Currency, 0, len(ids))
	for _, id := range ids {
		currencies = append(currencies, m.currencies[id])
	}
	return currencies, nil
}

func (m *mockCurrencyRepo) FindByID(id uint) (*models.Currency, error) {
	currency, ok := m.currencies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &currency, nil
}

func (m *mockCurrencyRepo) Create(currency *models.Currency) error {
	m.nextID++
	currency.ID = m.nextID
	m.currencies[currency.ID] = *currency
	return nil
}

func (m *mockCurrencyRepo) Update(currency *models.Currency) error {
	m.currencies[currency.ID] = *currency
	return nil
}

func (m *mockCurrencyRepo) Delete(id uint) error {
	delete(m.currencies, id)
	return nil
}

func (m *mockCurrencyRepo) InUse(id uint) (bool, error) {
	return m.used[id], nil
}

type mockProductRepo struct {
	currencyRepo *mockCurrencyRepo
	products     map[uint]models.Product
	nextID       uint
	nextPriceID  uint
	updateErr    error
}

func newMockProductRepo(currencyRepo *mockCurrencyRepo) *mockProductRepo {
	return &mockProductRepo{
		currencyRepo: currencyRepo,
		products:     make(map[uint]models.Product),
	}
}

func (m *mockProductRepo) loaded(p models.Product) models.Product {
	if currency, ok := m.currencyRepo.currencies[p.CurrencyID]; ok {
		p.Currency = currency
	}
	prices := make([]models.ProductPrice, len(p.Prices))
	copy(prices, p.Prices)
	for i := range prices {
		if currency, ok := m.currencyRepo.currencies[prices[i].CurrencyID]; ok {
			prices[i].Currency = currency
		}
	}
	p.Prices = prices
	return p
}

func (m *mockProductRepo) FindAll() ([]models.Product, error) {
	ids := make([]uint, 0, len(m.products))
	for id := range m.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, m.loaded(m.products[id]))
	}
	return products, nil
}

func (m *mockProductRepo) FindByID(id uint) (*models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := m.loaded(product)
	return &loaded, nil
}

func (m *mockProductRepo) Create(product *models.Product) error {
	m.nextID++
	product.ID = m.nextID
	for i := range product.Prices {
		m.nextPriceID++
		product.Prices[i].ID = m.nextPriceID
		product.Prices[i].ProductID = product.ID
	}
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepo) Update(id uint, updates map[string]interface{}, prices []models.ProductPrice, replacePrices bool) error {
	if m.updateErr != nil {
		return m.updateErr
	}

	product, ok := m.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		switch column {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(*string)
		case "price":
			product.Price = value.(decimal.Decimal)
		case "currency_id":
			product.CurrencyID = value.(uint)
		case "tax_cost":
			product.TaxCost = value.(decimal.Decimal)
		case "manufacturing_cost":
			product.ManufacturingCost = value.(decimal.Decimal)
		}
	}

	if replacePrices {
		replaced := make([]models.ProductPrice, len(prices))
		copy(replaced, prices)
		for i := range replaced {
			m.nextPriceID++
			replaced[i].ID = m.nextPriceID
			replaced[i].ProductID = id
		}
		product.Prices = replaced
	}

	m.products[id] = product
	return nil
}

func (m *mockProductRepo) Delete(id uint) error {
	delete(m.products, id)
	return nil
}

type mockProductPriceRepo struct {
	currencyRepo *mockCurrencyRepo
	prices       map[uint][]models.ProductPrice
	nextID       uint
	createErr    error
}

func newMockProductPriceRepo(currencyRepo *mockCurrencyRepo) *mockProductPriceRepo {
	return &mockProductPriceRepo{
		currencyRepo: currencyRepo,
		prices:       make(map[uint][]models.ProductPrice),
	}
}

func (m *mockProductPriceRepo) FindByProduct(productID uint) ([]models.ProductPrice, error) {
	rows := m.prices[productID]
	prices := make([]models.ProductPrice, len(rows))
	copy(prices, rows)
	for i := range prices {
		if currency, ok := m.currencyRepo.currencies[prices[i].CurrencyID]; ok {
			prices[i].Currency = currency
		}
	}
	return prices, nil
}

func (m *mockProductPriceRepo) FindByProductAndCurrency(productID, currencyID uint) (*models.ProductPrice, error) {
	for _, price := range m.prices[productID] {
		if price.CurrencyID == currencyID {
			found := price
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductPriceRepo) Create(price *models.ProductPrice) error {
	if m.createErr != nil {
		return m.createErr
	}

	m.nextID++
	price.ID = m.nextID
	if currency, ok := m.currencyRepo.currencies[price.CurrencyID]; ok {
		price.Currency = currency
	}
	m.prices[price.ProductID] = append(m.prices[price.ProductID], *price)
	return nil
}
