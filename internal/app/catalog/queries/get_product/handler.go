package get_product

import (
	"context"

	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/contracts"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns domain.ErrProductNotFound for unknown ids.
func (h *Handler) Execute(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := h.readModel.Product(productID)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(p, h.readModel.IsBeverage(p)), nil
}
