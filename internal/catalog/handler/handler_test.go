package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"realestate/internal/catalog/handler/mocks"
	"realestate/internal/catalog/models"
	"realestate/internal/catalog/service"
	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type HandlerSuite struct {
	suite.Suite
	router  chi.Router
	service *mocks.MockService
	logBuf  *bytes.Buffer
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.logBuf = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.logBuf, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *HandlerSuite) get(path string) *testResponse {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, path))
	return &testResponse{rr.Code, rr.Header(), testutil.ReadBody(s.T(), rr)}
}

type testResponse struct {
	code   int
	header http.Header
	body   []byte
}

func samplePage() *service.PropertyPage {
	return &service.PropertyPage{
		Items: []models.PropertyWithImages{{
			PropertyRecord: models.PropertyRecord{
				ID: "p1", Name: "Test Property 1", Address: "123 Main St",
				Price: 250000, CodeInternal: "PROP001", Year: 2010, OwnerID: "o1",
			},
			Images: []models.PropertyImageRecord{
				{ID: "i1", PropertyID: "p1", File: "https://cdn.example.com/off.jpg", Enabled: false},
				{ID: "i2", PropertyID: "p1", File: "https://cdn.example.com/on.jpg", Enabled: true},
			},
		}},
		TotalCount: 11,
		Page:       2,
		PageSize:   5,
	}
}

func (s *HandlerSuite) TestListProperties() {
	minPrice, maxPrice := 100000.0, 500000.0
	page, pageSize := 2, 5
	s.service.EXPECT().GetProperties(gomock.Any(), service.GetPropertiesQuery{
		Name: "Test Property", MinPrice: &minPrice, MaxPrice: &maxPrice,
		Page: &page, PageSize: &pageSize,
	}).Return(samplePage(), nil)

	resp := s.get("/api/v1/properties?name=Test+Property&minPrice=100000&maxPrice=500000&page=2&pageSize=5")

	s.Equal(http.StatusOK, resp.code)
	s.Equal("v1", resp.header.Get("X-API-Version"))
	s.JSONEq(`{
		"items": [{
			"id": "p1", "name": "Test Property 1", "address": "123 Main St",
			"price": 250000, "codeInternal": "PROP001", "year": 2010, "idOwner": "o1",
			"image": "https://cdn.example.com/on.jpg",
			"images": [
				{"id": "i1", "idProperty": "p1", "file": "https://cdn.example.com/off.jpg", "enabled": false},
				{"id": "i2", "idProperty": "p1", "file": "https://cdn.example.com/on.jpg", "enabled": true}
			]
		}],
		"totalCount": 11, "page": 2, "pageSize": 5, "totalPages": 3
	}`, string(resp.body))
}

func (s *HandlerSuite) TestListProperties_NoParameters() {
	s.service.EXPECT().GetProperties(gomock.Any(), service.GetPropertiesQuery{}).
		Return(&service.PropertyPage{Items: []models.PropertyWithImages{}, Page: 1, PageSize: 10}, nil)

	resp := s.get("/api/v1/properties")

	s.Equal(http.StatusOK, resp.code)
	s.JSONEq(`{"items": [], "totalCount": 0, "page": 1, "pageSize": 10, "totalPages": 0}`, string(resp.body))
}

func (s *HandlerSuite) TestListProperties_MalformedNumbers() {
	cases := map[string]string{
		"minPrice": "/api/v1/properties?minPrice=cheap",
		"maxPrice": "/api/v1/properties?maxPrice=NaN",
		"page":     "/api/v1/properties?page=1.5",
		"pageSize": "/api/v1/properties?pageSize=ten",
	}
	for field, path := range cases {
		s.Run(field, func() {
			s.service.EXPECT().GetProperties(gomock.Any(), gomock.Any()).Times(0)

			resp := s.get(path)
			s.Equal(http.StatusBadRequest, resp.code)
			s.JSONEq(fmt.Sprintf(`{"error": "bad_request", "error_description": %q, "field": %q}`,
				errorMessage(field), field), string(resp.body))
		})
	}
}

func errorMessage(field string) string {
	if field == "page" || field == "pageSize" {
		return field + " must be an integer"
	}
	return field + " must be a number"
}

func (s *HandlerSuite) TestListProperties_ValidationError() {
	s.service.EXPECT().GetProperties(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.NewField(dErrors.CodeValidation, "page", "page must be greater than 0"))

	resp := s.get("/api/v1/properties?page=0")

	s.Equal(http.StatusBadRequest, resp.code)
	s.JSONEq(`{"error": "validation_error", "error_description": "page must be greater than 0", "field": "page"}`, string(resp.body))
}

func (s *HandlerSuite) TestListProperties_InternalErrorHidesDetails() {
	s.service.EXPECT().GetProperties(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.Wrap(fmt.Errorf("mongo: connection reset"), dErrors.CodeInternal, "failed to query properties"))

	resp := s.get("/api/v1/properties")

	s.Equal(http.StatusInternalServerError, resp.code)
	s.JSONEq(`{"error": "internal_error"}`, string(resp.body))
	s.Equal("v1", resp.header.Get("X-API-Version"))
	s.Contains(s.logBuf.String(), `"api_version":"v1"`)
	s.Contains(s.logBuf.String(), `"level":"ERROR"`)
}

func (s *HandlerSuite) TestListProperties_Timeout() {
	s.service.EXPECT().GetProperties(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("count: %w", context.DeadlineExceeded))

	resp := s.get("/api/v1/properties")

	s.Equal(http.StatusGatewayTimeout, resp.code)
	s.JSONEq(`{"error": "timeout"}`, string(resp.body))
}

func (s *HandlerSuite) TestGetProperty() {
	s.Run("found", func() {
		item := samplePage().Items[0]
		s.service.EXPECT().GetPropertyByID(gomock.Any(), id.PropertyID("p1")).Return(&item, nil)

		resp := s.get("/api/v1/properties/p1")
		s.Equal(http.StatusOK, resp.code)
		s.Contains(string(resp.body), `"image":"https://cdn.example.com/on.jpg"`)
	})

	s.Run("not found", func() {
		s.service.EXPECT().GetPropertyByID(gomock.Any(), id.PropertyID("missing")).
			Return(nil, dErrors.NewField(dErrors.CodeNotFound, "id", "property missing not found"))

		resp := s.get("/api/v1/properties/missing")
		s.Equal(http.StatusNotFound, resp.code)
		s.JSONEq(`{"error": "not_found", "error_description": "property missing not found", "field": "id"}`, string(resp.body))
	})

	s.Run("malformed id", func() {
		s.service.EXPECT().GetPropertyByID(gomock.Any(), gomock.Any()).Times(0)

		resp := s.get("/api/v1/properties/%20")
		s.Equal(http.StatusBadRequest, resp.code)
	})
}
