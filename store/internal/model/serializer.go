package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Astemirdum/store-service/store/internal/errs"
)

// BookPayload is the create/update body. Owner and rating are never read
// from a payload: owner comes from the request identity, rating only from
// the aggregator.
type BookPayload struct {
	Name       string     `json:"name" validate:"required,max=255"`
	Price      PriceInput `json:"price"`
	AuthorName string     `json:"author_name" validate:"max=255"`
}

// PriceInput takes a price as either a JSON number or a string.
// Range and precision checks happen in BookPayload.Book.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}
	if string(b) == "null" {
		*p = ""
		return nil
	}
	*p = PriceInput(b)
	return nil
}

const (
	priceMaxDigits   = 7
	priceMaxDecimals = 2
)

// Book validates the payload and returns the book to persist.
func (p *BookPayload) Book() (Book, error) {
	price := strings.TrimSpace(string(p.Price))
	if price == "" {
		return Book{}, errs.NewValidationError("price", "This field is required.")
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return Book{}, errs.NewValidationError("price", "A valid number is required.")
	}
	if v < 0 {
		return Book{}, errs.NewValidationError("price", "Ensure this value is greater than or equal to 0.")
	}
	digits := 0
	for _, r := range price {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > priceMaxDigits {
		return Book{}, errs.NewValidationError("price", "Ensure that there are no more than %d digits in total.", priceMaxDigits)
	}
	if dot := strings.IndexByte(price, '.'); dot >= 0 && len(price)-dot-1 > priceMaxDecimals {
		return Book{}, errs.NewValidationError("price", "Ensure that there are no more than %d decimal places.", priceMaxDecimals)
	}
	return Book{
		Name:       p.Name,
		Price:      price,
		AuthorName: p.AuthorName,
	}, nil
}

// RelationPatch is a partial update to one user's relation with one book.
// Nil fields stay untouched.
type RelationPatch struct {
	Like        *bool `json:"like"`
	InBookmarks *bool `json:"in_bookmarks"`
	Rate        *int  `json:"rate"`
}

func (p *RelationPatch) Validate() error {
	if p.Rate != nil && (*p.Rate < 1 || *p.Rate > 5) {
		return errs.NewValidationError("rate", "%q is not a valid choice.", strconv.Itoa(*p.Rate))
	}
	return nil
}

// Fields maps the provided fields onto their columns.
func (p *RelationPatch) Fields() map[string]interface{} {
	m := make(map[string]interface{}, 3)
	if p.Like != nil {
		m["liked"] = *p.Like
	}
	if p.InBookmarks != nil {
		m["in_bookmarks"] = *p.InBookmarks
	}
	if p.Rate != nil {
		m["rate"] = *p.Rate
	}
	return m
}

var orderableFields = map[string]struct{}{
	"id":          {},
	"name":        {},
	"price":       {},
	"author_name": {},
}

// ParseOrdering validates an "ordering" query value: a declared field
// name, with a leading '-' for descending.
func ParseOrdering(s string) (field string, desc bool, err error) {
	if s == "" {
		return "id", false, nil
	}
	field = s
	if strings.HasPrefix(s, "-") {
		field, desc = s[1:], true
	}
	if _, ok := orderableFields[field]; !ok {
		return "", false, errs.NewValidationError("ordering", "%q is not a valid ordering field.", s)
	}
	return field, desc, nil
}
