package order

import (
	"fmt"

	"taza/internal/pkg/errs"
)

// Category identifies the kind of cleaning service an order asks for.
// The enumeration is closed; categories are immutable after order creation
// and each one carries a market-average price used by the fair-price
// evaluator.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// Clothing covers laundry and dry-cleaning of garments.
	Clothing

	// Furniture covers upholstery cleaning.
	Furniture

	// Shoes covers shoe cleaning and restoration.
	Shoes

	// Carpets covers carpet and rug cleaning.
	Carpets

	// Cleaning covers housekeeping visits.
	Cleaning

	// Strollers covers stroller and pram cleaning.
	Strollers
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "unknown",
		Clothing:        "clothing",
		Furniture:       "furniture",
		Shoes:           "shoes",
		Carpets:         "carpets",
		Cleaning:        "cleaning",
		Strollers:       "strollers",
	}
}

// AllCategories returns every valid category, in declaration order.
func AllCategories() []Category {
	return []Category{Clothing, Furniture, Shoes, Carpets, Cleaning, Strollers}
}

// CategoryFromString parses the wire representation of a category.
func CategoryFromString(s string) (Category, error) {
	for _, c := range AllCategories() {
		if c.String() == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the category is one of the closed enumeration.
func (c Category) Validate() error {
	if c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", int(c)))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", int(c)))
	}
	return nil
}

// String returns the wire name of the category.
func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}
