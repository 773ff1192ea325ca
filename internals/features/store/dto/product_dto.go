package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	helper "gymclub_backend/internals/helpers"
	"gymclub_backend/internals/helpers/apperr"

	"gymclub_backend/internals/features/store/model"
)

// Price arrives as a string from both the JSON client and the multipart
// form; it must parse as a non-negative decimal or the request is rejected.
func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperr.Validation("price is required")
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || p < 0 {
		return 0, apperr.Validation("price %q is not a valid amount", raw)
	}
	return p, nil
}

// Forms may post sizes either repeated (sizes=S&sizes=M) or as one
// comma-separated value; both normalize to a flat list.
func normalizeSizes(in []string) ([]string, error) {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out, nil
}

func sizesJSON(in []string) (datatypes.JSON, error) {
	sizes, err := normalizeSizes(in)
	if err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(sizes)
	if err != nil {
		return nil, apperr.Validation("sizes: %v", err)
	}
	return datatypes.JSON(b), nil
}

/* =========================================================
   CREATE
========================================================= */

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" validate:"required,max=120"`
	Category    string   `json:"category" form:"category" validate:"required,max=60"`
	Sizes       []string `json:"sizes" form:"sizes"`
	Description *string  `json:"description" form:"description"`
	Price       string   `json:"price" form:"price" validate:"required"`
}

func (r *CreateProductRequest) ToModel() (*model.Product, error) {
	if err := helper.Validate.Struct(r); err != nil {
		return nil, apperr.Validation("invalid product payload: %v", err)
	}
	price, err := parsePrice(r.Price)
	if err != nil {
		return nil, err
	}
	sizes, err := sizesJSON(r.Sizes)
	if err != nil {
		return nil, err
	}
	return &model.Product{
		ProductName:        strings.TrimSpace(r.Name),
		ProductCategory:    strings.TrimSpace(r.Category),
		ProductSizes:       sizes,
		ProductDescription: r.Description,
		ProductPrice:       price,
	}, nil
}

/* =========================================================
   UPDATE (partial)
========================================================= */

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name" validate:"omitempty,max=120"`
	Category    *string  `json:"category" form:"category" validate:"omitempty,max=60"`
	Sizes       []string `json:"sizes" form:"sizes"`
	Description *string  `json:"description" form:"description"`
	Price       *string  `json:"price" form:"price"`

	ClearMedia bool `json:"clear_media" form:"clear_media"`
}

func (r *UpdateProductRequest) Apply(m *model.Product) error {
	if err := helper.Validate.Struct(r); err != nil {
		return apperr.Validation("invalid product payload: %v", err)
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return apperr.Validation("name cannot be empty")
		}
		m.ProductName = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		if strings.TrimSpace(*r.Category) == "" {
			return apperr.Validation("category cannot be empty")
		}
		m.ProductCategory = strings.TrimSpace(*r.Category)
	}
	if r.Sizes != nil {
		sizes, err := sizesJSON(r.Sizes)
		if err != nil {
			return err
		}
		m.ProductSizes = sizes
	}
	if r.Description != nil {
		m.ProductDescription = r.Description
	}
	if r.Price != nil {
		price, err := parsePrice(*r.Price)
		if err != nil {
			return err
		}
		m.ProductPrice = price
	}
	return nil
}
