package handler

import (
	"realestate/internal/catalog/models"
	"realestate/internal/catalog/service"
)

type ImageResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"idProperty"`
	File       string `json:"file"`
	Enabled    bool   `json:"enabled"`
}

// PropertyResponse is a listed property. Image is the first enabled image
// file, empty when none is enabled.
type PropertyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        float64         `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         int             `json:"year"`
	OwnerID      string          `json:"idOwner"`
	Image        string          `json:"image"`
	Images       []ImageResponse `json:"images"`
}

type PropertyPageResponse struct {
	Items      []PropertyResponse `json:"items"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

func toPropertyResponse(p models.PropertyWithImages) PropertyResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{
			ID:         img.ID.String(),
			PropertyID: img.PropertyID.String(),
			File:       img.File,
			Enabled:    img.Enabled,
		})
	}
	return PropertyResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID.String(),
		Image:        p.PrimaryImage(),
		Images:       images,
	}
}

func toPageResponse(page *service.PropertyPage) PropertyPageResponse {
	items := make([]PropertyResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPropertyResponse(p))
	}
	return PropertyPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}
}
