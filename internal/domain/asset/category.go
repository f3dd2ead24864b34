package asset

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryLogo     Category = "LOGO"
	CategoryProduct  Category = "PRODUCT"
	CategoryCampaign Category = "CAMPAIGN"
)

var validCategories = map[Category]bool{
	CategoryLogo:     true,
	CategoryProduct:  true,
	CategoryCampaign: true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// Slug is the lowercase form used in storage keys.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

// ParseCategory accepts any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// Counts tallies assets per category.
type Counts struct {
	Total     int `json:"total"`
	Logos     int `json:"logos"`
	Products  int `json:"products"`
	Campaigns int `json:"campaigns"`
}

// CountByCategory is the single fold used by every full brand view.
func CountByCategory(assets []*Asset) Counts {
	var c Counts
	for _, a := range assets {
		if a == nil {
			continue
		}
		c.Total++
		switch a.Category() {
		case CategoryLogo:
			c.Logos++
		case CategoryProduct:
			c.Products++
		case CategoryCampaign:
			c.Campaigns++
		}
	}
	return c
}
