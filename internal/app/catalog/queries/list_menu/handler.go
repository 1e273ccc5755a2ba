package list_menu

import (
	"context"
	"strings"

	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/contracts"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute lists the menu grouped by category, filtered by term. A blank term
// lists everything. Add-ons are always listed in full.
func (h *Handler) Execute(ctx context.Context, term string) (*dto.MenuDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sections := h.readModel.Menu(strings.TrimSpace(term))
	out := &dto.MenuDTO{
		Sections: make([]*dto.MenuSectionDTO, 0, len(sections)),
	}
	for _, s := range sections {
		sec := &dto.MenuSectionDTO{
			CategoryID: s.Category.ID,
			Name:       s.Category.Name,
			Products:   make([]*dto.ProductDTO, 0, len(s.Products)),
		}
		for _, p := range s.Products {
			sec.Products = append(sec.Products, dto.FromProduct(p, h.readModel.IsBeverage(p)))
		}
		out.Sections = append(out.Sections, sec)
	}

	addOns := h.readModel.AddOns()
	out.AddOns = make([]*dto.AddOnDTO, 0, len(addOns))
	for _, a := range addOns {
		out.AddOns = append(out.AddOns, dto.FromAddOn(a))
	}
	return out, nil
}
