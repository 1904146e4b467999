package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	model "github.com/pharmakart/loyalty/internal/models"
	service "github.com/pharmakart/loyalty/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	router  *mux.Router
	loyalty *service.LoyaltyService
	promo   *service.PromoService
	logger  *zap.Logger
}

func NewHandler(loyalty *service.LoyaltyService, promo *service.PromoService, logger *zap.Logger) *LoyaltyHandler {
	router := mux.NewRouter()
	handler := &LoyaltyHandler{router, loyalty, promo, logger}
	router.HandleFunc("/tier/{points}", handler.ResolveTierHandler).Methods(http.MethodGet)
	router.HandleFunc("/tiers", handler.TiersHandler).Methods(http.MethodGet)
	router.HandleFunc("/points/award", handler.AwardHandler).Methods(http.MethodPost)
	router.HandleFunc("/points/adjust", handler.AdjustHandler).Methods(http.MethodPost)
	router.HandleFunc("/promo/validate", handler.ValidateHandler).Methods(http.MethodPost)
	router.HandleFunc("/promo/apportion", handler.ApportionHandler).Methods(http.MethodPost)
	router.HandleFunc("/promo/commit", handler.CommitHandler).Methods(http.MethodPost)
	router.HandleFunc("/ledger/{account}", handler.HistoryHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	return handler
}

func (h *LoyaltyHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	h.router.ServeHTTP(w, res)
}

func (h *LoyaltyHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Маппинг ошибок ядра на HTTP статусы
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *LoyaltyHandler) writeJSON(w http.ResponseWriter, service string, payload any) {
	j, err := json.Marshal(payload)
	if err != nil {
		h.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

func (h *LoyaltyHandler) readJSON(w http.ResponseWriter, req *http.Request, service string, target any) bool {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", service, err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return false
	}
	defer req.Body.Close()
	err = json.Unmarshal(body, target)
	if err != nil {
		h.Log("Unmarshal", service, err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return false
	}
	return true
}

type ResolveTierResponse struct {
	Current model.Tier  `json:"current"`
	Next    *model.Tier `json:"next,omitempty"`
}

// Определение уровня по балансу
func (h *LoyaltyHandler) ResolveTierHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	points, err := strconv.ParseInt(vars["points"], 10, 64)
	if err != nil || points < 0 {
		http.Error(w, "Points must be a non-negative integer", http.StatusBadRequest)
		return
	}

	tiers, err := h.loyalty.Tiers(req.Context())
	if err != nil {
		h.Log("Tiers get", "ResolveTierHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	current, next, err := service.ResolveTier(points, tiers)
	if err != nil {
		h.Log("Resolve", "ResolveTierHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "ResolveTierHandler", &ResolveTierResponse{current, next})
}

// Таблица уровней
func (h *LoyaltyHandler) TiersHandler(w http.ResponseWriter, req *http.Request) {
	tiers, err := h.loyalty.Tiers(req.Context())
	if err != nil {
		h.Log("Tiers get", "TiersHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "TiersHandler", tiers)
}

type AwardRequest struct {
	AccountID   string  `json:"accountId"`
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	OrderTotal  float64 `json:"orderTotal"`
}

// Начисление баллов за заказ
func (h *LoyaltyHandler) AwardHandler(w http.ResponseWriter, req *http.Request) {
	request := &AwardRequest{}
	if !h.readJSON(w, req, "AwardHandler", request) {
		return
	}
	if request.AccountID == "" || request.OrderID == "" {
		http.Error(w, "accountId and orderId are required", http.StatusBadRequest)
		return
	}

	result, err := h.loyalty.Award(req.Context(), request.AccountID, request.OrderID, request.OrderNumber, request.OrderTotal)
	if err != nil {
		h.Log("Award", "AwardHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "AwardHandler", result)
}

type AdjustRequest struct {
	AccountID   string  `json:"accountId"`
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	OldTotal    float64 `json:"oldTotal"`
	NewTotal    float64 `json:"newTotal"`
}

// Корректировка баллов после изменения заказа
func (h *LoyaltyHandler) AdjustHandler(w http.ResponseWriter, req *http.Request) {
	request := &AdjustRequest{}
	if !h.readJSON(w, req, "AdjustHandler", request) {
		return
	}
	if request.AccountID == "" || request.OrderID == "" {
		http.Error(w, "accountId and orderId are required", http.StatusBadRequest)
		return
	}

	result, err := h.loyalty.Adjust(req.Context(), request.AccountID, request.OrderID, request.OrderNumber, request.OldTotal, request.NewTotal)
	if err != nil {
		h.Log("Adjust", "AdjustHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "AdjustHandler", result)
}

type ValidateRequest struct {
	Code       string           `json:"code"`
	OrderTotal float64          `json:"orderTotal"`
	UserID     string           `json:"userId"`
	UserType   string           `json:"userType"`
	Cart       []model.CartLine `json:"cart"`
}

// Проверка промокода
func (h *LoyaltyHandler) ValidateHandler(w http.ResponseWriter, req *http.Request) {
	request := &ValidateRequest{}
	if !h.readJSON(w, req, "ValidateHandler", request) {
		return
	}

	result, err := h.promo.Validate(req.Context(), request.Code, request.OrderTotal, request.Cart, request.UserID, request.UserType)
	if err != nil {
		h.Log("Validate", "ValidateHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "ValidateHandler", result)
}

type ApportionRequest struct {
	Code     string           `json:"code"`
	Discount float64          `json:"discount"`
	Cart     []model.CartLine `json:"cart"`
}

// Распределение скидки по позициям корзины
func (h *LoyaltyHandler) ApportionHandler(w http.ResponseWriter, req *http.Request) {
	request := &ApportionRequest{}
	if !h.readJSON(w, req, "ApportionHandler", request) {
		return
	}

	offer, err := h.promo.OfferByCode(req.Context(), request.Code)
	if err != nil {
		h.Log("Offer get", "ApportionHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "ApportionHandler", service.ApportionDiscount(request.Cart, offer, request.Discount))
}

type CommitRequest struct {
	OfferID        string  `json:"offerId"`
	DiscountAmount float64 `json:"discountAmount"`
}

type CommitResponse struct {
	Success bool `json:"success"`
}

// Фиксация использования промокода
func (h *LoyaltyHandler) CommitHandler(w http.ResponseWriter, req *http.Request) {
	request := &CommitRequest{}
	if !h.readJSON(w, req, "CommitHandler", request) {
		return
	}
	offerID, err := uuid.Parse(request.OfferID)
	if err != nil {
		http.Error(w, "offerId is not a valid uuid", http.StatusBadRequest)
		return
	}

	ok, err := h.promo.Commit(req.Context(), offerID, request.DiscountAmount)
	if err != nil {
		h.Log("Commit", "CommitHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "CommitHandler", &CommitResponse{ok})
}

// История леджера за период
func (h *LoyaltyHandler) HistoryHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	account := vars["account"]

	from, err := time.Parse("2006-01-02", req.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "from date is not correct", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02", req.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "to date is not correct", http.StatusBadRequest)
		return
	}
	to = to.Add(24*time.Hour - time.Second)

	entries, err := h.loyalty.History(req.Context(), account, from, to)
	if err != nil {
		h.Log("History", "HistoryHandler", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	h.writeJSON(w, "HistoryHandler", entries)
}
