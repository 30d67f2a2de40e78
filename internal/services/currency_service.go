// internal/services/currency_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
	"github.com/mercata/catalog-api/internal/repository"
)

type CurrencyService struct {
	currencyRepo repository.CurrencyRepository
}

type CreateCurrencyRequest struct {
	Code   string `json:"code" validate:"required,max=10"`
	Name   string `json:"name" validate:"required,max=100"`
	Symbol string `json:"symbol" validate:"required,max=10"`
}

type UpdateCurrencyRequest struct {
	Code   *string `json:"code" validate:"omitempty,max=10"`
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Symbol *string `json:"symbol" validate:"omitempty,max=10"`
}

func NewCurrencyService(currencyRepo repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) ListCurrencies() ([]models.Currency, error) {
	currencies, err := s.currencyRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []models.Currency{}
	}
	return currencies, nil
}

func (s *CurrencyService) CreateCurrency(req *CreateCurrencyRequest) (*models.Currency, error) {
	currency := &models.Currency{
		Code:   req.Code,
		Name:   req.Name,
		Symbol: req.Symbol,
	}

	if err := s.currencyRepo.Create(currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) GetCurrency(id uint) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurrencyNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) UpdateCurrency(id uint, req *UpdateCurrencyRequest) (*models.Currency, error) {
	currency, err := s.GetCurrency(id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		currency.Code = *req.Code
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}

	if err := s.currencyRepo.Update(currency); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	return currency, nil
}

// DeleteCurrency refuses to delete reference data that catalog rows still
// point at, so a stray DELETE cannot orphan products or prices.
func (s *CurrencyService) DeleteCurrency(id uint) error {
	if _, err := s.GetCurrency(id); err != nil {
		return err
	}

	inUse, err := s.currencyRepo.InUse(id)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if inUse {
		return ErrCurrencyInUse
	}

	if err := s.currencyRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	return nil
}
