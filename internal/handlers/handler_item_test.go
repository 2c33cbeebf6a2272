package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/dto"
	"github.com/padgame/pad_backend/internal/handlers"
	"github.com/padgame/pad_backend/internal/platform/config"
)

// --- Mock ItemService ---
type MockItemService struct {
	mock.Mock
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

func (m *MockItemService) ListItems(ctx context.Context, page, pageSize int) (int64, []domain.Item, error) {
	args := m.Called(ctx, page, pageSize)
	var items []domain.Item
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.Item)
	}
	return args.Get(0).(int64), items, args.Error(2)
}

func (m *MockItemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetPriceHistory(ctx context.Context, itemID string) ([]domain.PriceHistoryEntry, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceHistoryEntry), args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockItemService) UpdatePrice(ctx context.Context, itemID string, price dto.PriceInput) (*domain.Item, error) {
	args := m.Called(ctx, itemID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) EnsureSeedData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type ItemHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockItemService
	mockHealth  *MockHealthRepository
}

func (suite *ItemHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockItemService)
	suite.mockHealth = new(MockHealthRepository)
	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterShopServiceRoutes(suite.router, cfg, suite.mockService, suite.mockHealth)
}

func (suite *ItemHandlerTestSuite) serve(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ItemHandlerTestSuite) decodeBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testItem(title, amount string) domain.Item {
	return domain.Item{
		ItemID:     uuid.NewString(),
		Title:      title,
		Durability: 5,
		Price: domain.Money{
			Amount:   decimal.RequireFromString(amount),
			Currency: "CRD",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func (suite *ItemHandlerTestSuite) TestGetItems_DefaultPaging() {
	items := []domain.Item{testItem("EMF Reader", "50.00"), testItem("Thermometer", "30.00")}

	suite.mockService.On("ListItems", mock.Anything, 1, 20).Return(int64(2), items, nil).Once()

	w := suite.serve(http.MethodGet, "/items", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(float64(2), body["total"])
	suite.Equal(float64(1), body["page"])
	suite.Equal(float64(20), body["pageSize"])
	list := body["items"].([]any)
	suite.Require().Len(list, 2)

	first := list[0].(map[string]any)
	suite.Equal("EMF Reader", first["title"])
	price := first["price"].(map[string]any)
	// Amounts are JSON numbers, not strings.
	suite.Equal(float64(50), price["amount"])
	suite.Equal("CRD", price["currency"])
}

func (suite *ItemHandlerTestSuite) TestGetItems_ExplicitPaging() {
	suite.mockService.On("ListItems", mock.Anything, 2, 5).Return(int64(12), []domain.Item{}, nil).Once()

	w := suite.serve(http.MethodGet, "/items?page=2&pageSize=5", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(float64(2), body["page"])
	suite.Equal(float64(5), body["pageSize"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ItemHandlerTestSuite) TestGetItems_InvalidPagingClamped() {
	suite.mockService.On("ListItems", mock.Anything, 1, 1).Return(int64(0), []domain.Item{}, nil).Once()

	w := suite.serve(http.MethodGet, "/items?page=0&pageSize=-3", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(float64(1), body["page"])
	suite.Equal(float64(1), body["pageSize"])
}

func (suite *ItemHandlerTestSuite) TestGetItem_Success() {
	item := testItem("EMF Reader", "50.00")

	suite.mockService.On("GetItemByID", mock.Anything, item.ItemID).Return(&item, nil).Once()

	w := suite.serve(http.MethodGet, "/items/"+item.ItemID, nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(item.ItemID, body["id"])
	suite.Equal("EMF Reader", body["title"])
	suite.Equal(float64(5), body["durability"])
}

func (suite *ItemHandlerTestSuite) TestGetItem_NotFound() {
	itemID := uuid.NewString()
	suite.mockService.On("GetItemByID", mock.Anything, itemID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/items/"+itemID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Item not found", suite.decodeBody(w)["error"])
}

func (suite *ItemHandlerTestSuite) TestGetItem_MalformedID() {
	w := suite.serve(http.MethodGet, "/items/NOT_AN_ID", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Endpoint not found", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "GetItemByID", mock.Anything, mock.Anything)
}

func (suite *ItemHandlerTestSuite) TestGetPriceHistory_Success() {
	itemID := uuid.NewString()
	history := []domain.PriceHistoryEntry{
		{ItemID: itemID, Price: domain.Money{Amount: decimal.RequireFromString("75.00"), Currency: "CRD"}, EffectiveFrom: time.Now().UTC()},
		{ItemID: itemID, Price: domain.Money{Amount: decimal.RequireFromString("50.00"), Currency: "CRD"}, EffectiveFrom: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockService.On("GetPriceHistory", mock.Anything, itemID).Return(history, nil).Once()

	w := suite.serve(http.MethodGet, "/items/"+itemID+"/prices", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	entries := body["history"].([]any)
	suite.Require().Len(entries, 2)
	newest := entries[0].(map[string]any)
	suite.Equal(float64(75), newest["price"].(map[string]any)["amount"])
	suite.NotEmpty(newest["since"])
}

func (suite *ItemHandlerTestSuite) TestGetPriceHistory_ItemNotFound() {
	itemID := uuid.NewString()
	suite.mockService.On("GetPriceHistory", mock.Anything, itemID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/items/"+itemID+"/prices", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Item not found", suite.decodeBody(w)["error"])
}

func (suite *ItemHandlerTestSuite) TestCreateItem_Success() {
	itemID := uuid.NewString()
	suite.mockService.On("CreateItem", mock.Anything, mock.MatchedBy(func(req dto.CreateItemRequest) bool {
		return req.Title == "Spirit Box" && req.Price.Amount != nil &&
			req.Price.Amount.Equal(decimal.RequireFromString("45.50"))
	})).Return(itemID, nil).Once()

	w := suite.serve(http.MethodPost, "/items", gin.H{
		"title": "Spirit Box",
		"price": gin.H{"amount": 45.50},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(itemID, suite.decodeBody(w)["id"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ItemHandlerTestSuite) TestCreateItem_MissingAmount() {
	w := suite.serve(http.MethodPost, "/items", gin.H{
		"title": "Spirit Box",
		"price": gin.H{"currency": "CRD"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid input data", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything)
}

func (suite *ItemHandlerTestSuite) TestCreateItem_MissingTitle() {
	w := suite.serve(http.MethodPost, "/items", gin.H{
		"price": gin.H{"amount": 45.50},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid input data", suite.decodeBody(w)["error"])
}

func (suite *ItemHandlerTestSuite) TestUpdatePrice_Success() {
	item := testItem("EMF Reader", "75.00")

	suite.mockService.On("UpdatePrice", mock.Anything, item.ItemID, mock.MatchedBy(func(price dto.PriceInput) bool {
		return price.Amount != nil && price.Amount.Equal(decimal.RequireFromString("75.00"))
	})).Return(&item, nil).Once()

	w := suite.serve(http.MethodPatch, "/items/"+item.ItemID+"/price", gin.H{
		"price": gin.H{"amount": 75.00},
	})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decodeBody(w)
	suite.Equal(item.ItemID, body["id"])
	suite.Equal(float64(75), body["price"].(map[string]any)["amount"])
}

func (suite *ItemHandlerTestSuite) TestUpdatePrice_MissingAmount() {
	w := suite.serve(http.MethodPatch, "/items/"+uuid.NewString()+"/price", gin.H{
		"price": gin.H{"currency": "CRD"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid input data", suite.decodeBody(w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "UpdatePrice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemHandlerTestSuite) TestUpdatePrice_ItemNotFound() {
	itemID := uuid.NewString()
	suite.mockService.On("UpdatePrice", mock.Anything, itemID, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodPatch, "/items/"+itemID+"/price", gin.H{
		"price": gin.H{"amount": 75.00},
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Item not found", suite.decodeBody(w)["error"])
}

func (suite *ItemHandlerTestSuite) TestHealth_ReportsShopService() {
	suite.mockHealth.On("Check", mock.Anything).Return(nil).Once()

	w := suite.serve(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Shop Service Go", suite.decodeBody(w)["service"])
}

func TestItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}
