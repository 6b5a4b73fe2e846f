package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"realestate/internal/catalog/service"
	dErrors "realestate/pkg/domain-errors"
)

// parseListQuery reads the optional listing parameters. Absent or empty
// values stay unset; malformed numbers are bad requests.
func parseListQuery(r *http.Request) (service.GetPropertiesQuery, error) {
	values := r.URL.Query()
	q := service.GetPropertiesQuery{
		Name:    values.Get("name"),
		Address: values.Get("address"),
	}

	var err error
	if q.MinPrice, err = optionalFloat(values.Get("minPrice"), "minPrice"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = optionalFloat(values.Get("maxPrice"), "maxPrice"); err != nil {
		return q, err
	}
	if q.Page, err = optionalInt(values.Get("page"), "page"); err != nil {
		return q, err
	}
	if q.PageSize, err = optionalInt(values.Get("pageSize"), "pageSize"); err != nil {
		return q, err
	}
	return q, nil
}

func optionalFloat(raw, field string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, dErrors.NewField(dErrors.CodeBadRequest, field, field+" must be a number")
	}
	return &v, nil
}

func optionalInt(raw, field string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, dErrors.NewField(dErrors.CodeBadRequest, field, field+" must be an integer")
	}
	return &v, nil
}
