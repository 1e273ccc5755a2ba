// Package data holds the static menu compiled into the binary.
package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

//go:embed menu.yaml
var menuYAML []byte

type menuFile struct {
	Categories []categoryRecord `yaml:"categories"`
	AddOns     []addOnRecord    `yaml:"addons"`
	Products   []productRecord  `yaml:"products"`
}

type categoryRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type addOnRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type productRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
}

// Load parses the embedded menu.
func Load(beverageCategory string) (*domain.Catalog, error) {
	return Parse(menuYAML, beverageCategory)
}

// MustLoad is Load for process startup, where a broken menu is fatal.
func MustLoad(beverageCategory string) *domain.Catalog {
	c, err := Load(beverageCategory)
	if err != nil {
		panic(fmt.Sprintf("load embedded menu: %v", err))
	}
	return c
}

// Parse builds a Catalog from a YAML menu document.
func Parse(raw []byte, beverageCategory string) (*domain.Catalog, error) {
	var f menuFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	categories := make([]domain.Category, 0, len(f.Categories))
	for _, r := range f.Categories {
		c, err := domain.NewCategory(r.ID, r.Name)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", r.ID, err)
		}
		categories = append(categories, c)
	}

	addOns := make([]domain.AddOn, 0, len(f.AddOns))
	for _, r := range f.AddOns {
		price, err := domain.NewMoneyFromDecimal(r.Price)
		if err != nil {
			return nil, fmt.Errorf("add-on %q: %w", r.ID, err)
		}
		a, err := domain.NewAddOn(r.ID, r.Name, price)
		if err != nil {
			return nil, fmt.Errorf("add-on %q: %w", r.ID, err)
		}
		addOns = append(addOns, a)
	}

	products := make([]*domain.Product, 0, len(f.Products))
	for _, r := range f.Products {
		price, err := domain.NewMoneyFromDecimal(r.Price)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", r.ID, err)
		}
		p, err := domain.NewProduct(r.ID, r.Name, r.Description, price, r.Category, r.Image)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", r.ID, err)
		}
		products = append(products, p)
	}

	return domain.NewCatalog(categories, addOns, products, beverageCategory)
}
