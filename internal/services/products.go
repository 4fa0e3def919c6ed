package services

import "errors"

var ErrUnknownProduct = errors.New("unknown product")

const (
	ProductPremiumLifetime = "premium_lifetime"
	ProductTokensSmall     = "tokens_pack_small"
	ProductTokensLarge     = "tokens_pack_large"
)

// Product is one purchasable SKU. Prices are in kopecks, the minor unit the
// Bot API invoice expects for RUB.
type Product struct {
	SKU           string
	Title         string
	Description   string
	AmountKopecks int
	Tokens        int
	GrantsPremium bool
}

var products = map[string]Product{
	ProductPremiumLifetime: {
		SKU:           ProductPremiumLifetime,
		Title:         "Этерия Premium",
		Description:   "Пожизненный доступ к полным гороскопам",
		AmountKopecks: 14900,
		GrantsPremium: true,
	},
	ProductTokensSmall: {
		SKU:           ProductTokensSmall,
		Title:         "5 Ответов Оракула",
		Description:   "Энергия для общения с Оракулом",
		AmountKopecks: 5900,
		Tokens:        5,
	},
	ProductTokensLarge: {
		SKU:           ProductTokensLarge,
		Title:         "15 Ответов Оракула",
		Description:   "Большой запас энергии для Оракула",
		AmountKopecks: 14900,
		Tokens:        15,
	},
}

func ProductBySKU(sku string) (Product, error) {
	product, ok := products[sku]
	if !ok {
		return Product{}, ErrUnknownProduct
	}
	return product, nil
}
