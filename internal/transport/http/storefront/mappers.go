package storefront

import (
	cart "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain/services"
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/dto"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/checkout"
)

// Prices are decimal strings with two places throughout.

type productView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price"`
	Beverage    bool   `json:"beverage"`
}

type addOnView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type menuSectionView struct {
	Category string        `json:"category"`
	Name     string        `json:"name"`
	Products []productView `json:"products"`
}

type menuView struct {
	Sections []menuSectionView `json:"sections"`
	AddOns   []addOnView       `json:"add_ons"`
}

type itemView struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	Name         string      `json:"name"`
	Image        string      `json:"image,omitempty"`
	Quantity     int         `json:"quantity"`
	UnitPrice    string      `json:"unit_price"`
	AddOns       []addOnView `json:"add_ons"`
	AddOnsTotal  string      `json:"add_ons_total"`
	UnitTotal    string      `json:"unit_total"`
	Observations string      `json:"observations,omitempty"`
	Total        string      `json:"total"`
}

type cartView struct {
	Items     []itemView `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     string     `json:"total"`
}

type dialogView struct {
	ProductID    string      `json:"product_id"`
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	Selected     []addOnView `json:"selected_add_ons"`
	Observations string      `json:"observations"`
	Total        string      `json:"total"`
}

type sessionView struct {
	SessionID  string      `json:"session_id"`
	SearchTerm string      `json:"search_term"`
	CartOpen   bool        `json:"cart_open"`
	Cart       cartView    `json:"cart"`
	Dialog     *dialogView `json:"dialog"`
}

type checkoutView struct {
	Sent    bool        `json:"sent"`
	URL     string      `json:"url,omitempty"`
	Message string      `json:"message,omitempty"`
	Session sessionView `json:"session"`
}

func mapProductDTO(p *dto.ProductDTO) productView {
	return productView{
		ID:          p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.CategoryID,
		Image:       p.Image,
		Price:       p.Price,
		Beverage:    p.Beverage,
	}
}

func mapMenuDTO(m *dto.MenuDTO) menuView {
	out := menuView{
		Sections: make([]menuSectionView, 0, len(m.Sections)),
		AddOns:   make([]addOnView, 0, len(m.AddOns)),
	}
	for _, s := range m.Sections {
		sec := menuSectionView{Category: s.CategoryID, Name: s.Name, Products: make([]productView, 0, len(s.Products))}
		for _, p := range s.Products {
			sec.Products = append(sec.Products, mapProductDTO(p))
		}
		out.Sections = append(out.Sections, sec)
	}
	for _, a := range m.AddOns {
		out.AddOns = append(out.AddOns, addOnView{ID: a.AddOnID, Name: a.Name, Price: a.Price})
	}
	return out
}

func mapAddOns(in []catalog.AddOn) []addOnView {
	out := make([]addOnView, 0, len(in))
	for _, a := range in {
		out = append(out, addOnView{ID: a.ID, Name: a.Name, Price: a.Price.FloatString(2)})
	}
	return out
}

func mapCart(c *cart.Cart) cartView {
	items := c.Items()
	out := cartView{
		Items:     make([]itemView, 0, len(items)),
		ItemCount: c.ItemCount(),
		Total:     c.Total().FloatString(2),
	}
	pricing := services.NewPricingCalculator()
	for _, it := range items {
		out.Items = append(out.Items, itemView{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Name:         it.Name,
			Image:        it.Image,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.FloatString(2),
			AddOns:       mapAddOns(it.AddOns),
			AddOnsTotal:  pricing.AddOnsTotal(it).FloatString(2),
			UnitTotal:    it.UnitEffectivePrice().FloatString(2),
			Observations: it.Observations,
			Total:        it.TotalPrice().FloatString(2),
		})
	}
	return out
}

func mapDialog(d *cart.Configurator) *dialogView {
	if d == nil {
		return nil
	}
	return &dialogView{
		ProductID:    d.Product().ID(),
		Name:         d.Product().Name(),
		Quantity:     d.Quantity(),
		Selected:     mapAddOns(d.SelectedAddOns()),
		Observations: d.Observations(),
		Total:        d.Total().FloatString(2),
	}
}

func mapSession(id string, s session.State) sessionView {
	c := s.Cart
	if c == nil {
		c = cart.NewCart(nil)
	}
	return sessionView{
		SessionID:  id,
		SearchTerm: s.SearchTerm,
		CartOpen:   s.CartOpen,
		Cart:       mapCart(c),
		Dialog:     mapDialog(s.Dialog),
	}
}

func mapCheckout(id string, res checkout.Result) checkoutView {
	return checkoutView{
		Sent:    res.Sent,
		URL:     res.URL,
		Message: res.Message,
		Session: mapSession(id, res.State),
	}
}
