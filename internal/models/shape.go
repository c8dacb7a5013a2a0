package models

// The buyer-facing views and the stored documents use different field names
// (title/basePrice/img/oil vs name/price/imageUrl/isLiquid). This file is the
// single place where the two vocabularies meet; handlers never rename fields
// inline.

// BuyerProduct is the catalog entry as customer-facing views expect it.
type BuyerProduct struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Title     string   `json:"title"`
	BasePrice float64  `json:"basePrice"`
	Img       string   `json:"img"`
	Varieties []string `json:"varieties"`
	Oil       bool     `json:"oil"`
}

// ToBuyerShape maps a stored product to the buyer vocabulary. Legacy
// documents without a productId fall back to the Mongo id.
func ToBuyerShape(p Product) BuyerProduct {
	id := p.ProductID
	if id == "" {
		id = p.ID.Hex()
	}
	varieties := p.Varieties
	if varieties == nil {
		varieties = []string{}
	}
	return BuyerProduct{
		ID:        id,
		Category:  p.Category,
		Title:     p.Name,
		BasePrice: p.Price,
		Img:       p.ImageURL,
		Varieties: varieties,
		Oil:       p.IsLiquid,
	}
}

// ProductPayload accepts a product write in either vocabulary. Every buyer
// term has its storage twin next to it; pointers record which fields the
// client actually sent.
type ProductPayload struct {
	ID        *string `json:"id"`
	ProductID *string `json:"productId"`

	Title *string `json:"title"`
	Name  *string `json:"name"`

	BasePrice *float64 `json:"basePrice"`
	Price     *float64 `json:"price"`

	Img      *string `json:"img"`
	ImageURL *string `json:"imageUrl"`

	Oil      *bool `json:"oil"`
	IsLiquid *bool `json:"isLiquid"`

	Category    *string   `json:"category"`
	Varieties   *[]string `json:"varieties"`
	Unit        *string   `json:"unit"`
	Description *string   `json:"description"`
	Active      *bool     `json:"active"`
}

// ProductFields is the payload translated to storage vocabulary, with set
// flags so updates can distinguish "absent" from zero values.
type ProductFields struct {
	ProductID *string
	Name      *string
	Price     *float64
	Category  *string
	ImageURL  *string

	Description *string
	Varieties   *[]string
	IsLiquid    *bool
	Unit        *string
	Active      *bool
}

// StorageFields resolves each buyer/storage pair. The storage term wins when
// both are present, matching how the reference API accepted either style.
func (p ProductPayload) StorageFields() ProductFields {
	return ProductFields{
		ProductID:   firstOf(p.ProductID, p.ID),
		Name:        firstOf(p.Name, p.Title),
		Price:       firstOf(p.Price, p.BasePrice),
		Category:    p.Category,
		ImageURL:    firstOf(p.ImageURL, p.Img),
		Description: p.Description,
		Varieties:   p.Varieties,
		IsLiquid:    firstOf(p.IsLiquid, p.Oil),
		Unit:        p.Unit,
		Active:      p.Active,
	}
}

func firstOf[T any](primary, fallback *T) *T {
	if primary != nil {
		return primary
	}
	return fallback
}
