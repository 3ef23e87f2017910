package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"marketplace-settlement/internal/adapter/http/middleware"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/core/ports/mocks"
	"marketplace-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	payments *mocks.MockPaymentEventService
	bridge   *mocks.MockShippingBridge
	payouts  *mocks.MockPayoutService
	returns  *mocks.MockReturnService
	sig      *mocks.MockSignatureService
	tokens   *mocks.MockTokenService
	audit    *mocks.MockAuditService
	adminID  uuid.UUID
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		payments: mocks.NewMockPaymentEventService(ctrl),
		bridge:   mocks.NewMockShippingBridge(ctrl),
		payouts:  mocks.NewMockPayoutService(ctrl),
		returns:  mocks.NewMockReturnService(ctrl),
		sig:      mocks.NewMockSignatureService(ctrl),
		tokens:   mocks.NewMockTokenService(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
		adminID:  uuid.New(),
	}
	f.tokens.EXPECT().Validate("admin").Return(&ports.TokenClaims{ActorID: f.adminID, Role: middleware.RoleAdmin}, nil).AnyTimes()

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "mkt_test_total"}))

	f.router = SetupRouter(RouterDeps{
		PaymentEvents: f.payments,
		Bridge:        f.bridge,
		Payouts:       f.payouts,
		Returns:       f.returns,
		SigSvc:        f.sig,
		TokenSvc:      f.tokens,
		PaymentSecret: "whsec",
		CarrierToken:  "ghn-token",
		Gatherer:      reg,
		AuditSvc:      f.audit,
		Logger:        zerolog.Nop(),
	})
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func adminRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Webhooks ---

func TestPaymentWebhook_Applied(t *testing.T) {
	f := newFixture(t)
	orderID := uuid.New()
	body := `{"external_ref":"pi_1","order_id":"` + orderID.String() + `","amount":150000,"status":"paid"}`
	ts := time.Now().Unix()

	f.sig.EXPECT().BuildCanonicalString(ts, body).Return("canon")
	f.sig.EXPECT().Verify("whsec", "canon", "sig").Return(true)
	f.payments.EXPECT().ApplyPaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.PaymentEvent) (*domain.PaymentOutcome, error) {
			assert.Equal(t, "pi_1", ev.ExternalRef)
			assert.Equal(t, orderID, ev.OrderID)
			assert.Equal(t, int64(150_000), ev.Amount)
			assert.Equal(t, domain.PaymentMethodGateway, ev.Method)
			return &domain.PaymentOutcome{ExternalRef: ev.ExternalRef, OrderID: orderID, Status: ev.Status, HeldAmount: ev.Amount}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderSignature, "sig")
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	w := f.do(req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "pi_1", data["external_ref"])
	assert.EqualValues(t, 150_000, data["held_amount"])
}

func TestPaymentWebhook_InvalidBody(t *testing.T) {
	f := newFixture(t)
	body := `{"external_ref":"pi 1","order_id":"nope","amount":0,"status":"paid"}`
	ts := time.Now().Unix()
	f.sig.EXPECT().BuildCanonicalString(ts, body).Return("canon")
	f.sig.EXPECT().Verify("whsec", "canon", "sig").Return(true)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(body))
	req.Header.Set(middleware.HeaderSignature, "sig")
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	w := f.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decode(t, w)["error_code"])
}

func TestCarrierWebhook(t *testing.T) {
	f := newFixture(t)
	fee := int64(30_000)
	f.bridge.EXPECT().ApplyCarrierUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.CarrierUpdate) error {
			assert.Equal(t, "GHN123", u.OrderCode)
			assert.Equal(t, domain.ShipmentDelivered, u.Status())
			assert.Equal(t, &fee, u.TotalFee)
			return nil
		})
	f.bridge.EXPECT().ApplyCarrierUpdate(gomock.Any(), gomock.Any()).Return(apperror.ErrNotFound("shipment"))
	f.bridge.EXPECT().ApplyCarrierUpdate(gomock.Any(), gomock.Any()).Return(apperror.InternalError(errors.New("db down")))

	send := func(token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set(middleware.HeaderCarrierToken, token)
		}
		return f.do(req)
	}

	w := send("ghn-token", `{"OrderCode":"GHN123","Status":"delivered","TotalFee":30000}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	// Unknown codes are acknowledged so the carrier stops retrying.
	w = send("ghn-token", `{"OrderCode":"GHN999","Status":"picked"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "unknown order code")

	w = send("ghn-token", `{"OrderCode":"GHN124","Status":"picked"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = send("ghn-token", `{"OrderCode":"GHN123","Status":"teleported"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send("", `{"OrderCode":"GHN123","Status":"picked"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Admin ---

func TestAdmin_RequiresAdminRole(t *testing.T) {
	f := newFixture(t)
	f.tokens.EXPECT().Validate("support").Return(&ports.TokenClaims{ActorID: uuid.New(), Role: "support"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/payout-bills", nil)
	req.Header.Set("Authorization", "Bearer support")
	assert.Equal(t, http.StatusForbidden, f.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/payout-bills", nil)
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestListBills(t *testing.T) {
	f := newFixture(t)
	storeID := uuid.New()
	f.payouts.EXPECT().ListBills(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.PayoutBillListParams) ([]domain.PayoutBill, int64, error) {
			require.NotNil(t, p.StoreID)
			assert.Equal(t, storeID, *p.StoreID)
			require.NotNil(t, p.Status)
			assert.Equal(t, domain.PayoutBillPending, *p.Status)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, defaultPageSize, p.PageSize)
			return []domain.PayoutBill{{ID: uuid.New(), StoreID: storeID, Status: domain.PayoutBillPending}}, 21, nil
		})

	w := f.do(adminRequest(http.MethodGet, "/admin/payout-bills?store_id="+storeID.String()+"&status=PENDING&page=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Len(t, resp["data"], 1)
	meta := resp["meta"].(map[string]interface{})
	assert.EqualValues(t, 21, meta["total"])

	w = f.do(adminRequest(http.MethodGet, "/admin/payout-bills?status=OPEN", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBill(t *testing.T) {
	f := newFixture(t)
	billID := uuid.New()
	f.payouts.EXPECT().GetBill(gomock.Any(), billID).Return(&ports.PayoutBillDetail{
		Bill:  &domain.PayoutBill{ID: billID, BillCode: "PB-01"},
		Items: []domain.PayoutBillItem{{}},
	}, nil)
	f.payouts.EXPECT().GetBill(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotFound("payout bill"))

	w := f.do(adminRequest(http.MethodGet, "/admin/payout-bills/"+billID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	bill := decode(t, w)["data"].(map[string]interface{})["bill"].(map[string]interface{})
	assert.Equal(t, "PB-01", bill["bill_code"])

	w = f.do(adminRequest(http.MethodGet, "/admin/payout-bills/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(adminRequest(http.MethodGet, "/admin/payout-bills/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewBill(t *testing.T) {
	f := newFixture(t)
	billID := uuid.New()
	f.payouts.EXPECT().MoveBillToReview(gomock.Any(), billID, f.adminID, "check iban").
		Return(&domain.PayoutBill{ID: billID, Status: domain.PayoutBillReview}, nil)
	f.payouts.EXPECT().MoveBillToReview(gomock.Any(), billID, f.adminID, "").
		Return(nil, apperror.ErrInvalidStateTransition("REVIEW", "REVIEW"))
	f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionReviewBill, e.Action)
		assert.Equal(t, billID.String(), e.ResourceID)
	})

	w := f.do(adminRequest(http.MethodPost, "/admin/payout-bills/"+billID.String()+"/review", map[string]string{"note": "check iban"}))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(adminRequest(http.MethodPost, "/admin/payout-bills/"+billID.String()+"/review", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMarkBillPaid(t *testing.T) {
	f := newFixture(t)
	billID := uuid.New()
	f.payouts.EXPECT().MarkBillAsPaid(gomock.Any(), ports.MarkBillPaidRequest{
		BillID:            billID,
		AdminID:           f.adminID,
		TransferReference: "VCB-0001",
		ReceiptImageURL:   "https://cdn.example.com/r.png",
		AdminNote:         "done",
	}).Return(&domain.PayoutBill{ID: billID, Status: domain.PayoutBillPaid, TransferReference: "VCB-0001"}, nil)
	f.audit.EXPECT().Log(gomock.Any(), gomock.Any())

	w := f.do(adminRequest(http.MethodPost, "/admin/payout-bills/"+billID.String()+"/pay", map[string]string{
		"transfer_reference": " VCB-0001 ",
		"receipt_image_url":  "https://cdn.example.com/r.png",
		"admin_note":         "done",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PAID", decode(t, w)["data"].(map[string]interface{})["status"])

	w = f.do(adminRequest(http.MethodPost, "/admin/payout-bills/"+billID.String()+"/pay", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveDispute(t *testing.T) {
	f := newFixture(t)
	returnID := uuid.New()
	f.returns.EXPECT().ResolveDispute(gomock.Any(), returnID, domain.Actor{Kind: domain.ActorAdmin, ID: f.adminID}, true, "parcel damaged").
		Return(&domain.ReturnRequest{ID: returnID, Status: domain.ReturnDisputeResolvedCustomer}, nil)
	f.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionResolveDispute, e.Action)
	})

	w := f.do(adminRequest(http.MethodPost, "/admin/returns/"+returnID.String()+"/resolve", map[string]interface{}{
		"in_favor_of_customer": true,
		"note":                 "parcel damaged",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	// The verdict is required; a missing flag is not read as "for the shop".
	w = f.do(adminRequest(http.MethodPost, "/admin/returns/"+returnID.String()+"/resolve", map[string]interface{}{"note": "x"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health, metrics, docs ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Ping(ctx context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/ok", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))
	r.GET("/degraded", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("refused")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/degraded", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "degraded", resp["status"])
	redis := resp["dependencies"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "refused", redis["error"])
}

func TestMetricsAndDocs(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mkt_test_total")

	w = f.do(httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/admin/payout-bills/{id}/pay")

	w = f.do(httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
