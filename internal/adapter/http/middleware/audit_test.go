package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_BillPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	adminID := uuid.New()
	billID := uuid.New()
	var got *domain.AuditLog
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		got = entry
	})

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxActorID, adminID) }, AuditLog(mockAudit))
	r.POST("/admin/payout-bills/:id/pay", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/payout-bills/"+billID.String()+"/pay", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, domain.AuditActionMarkBillPaid, got.Action)
	assert.Equal(t, "payout_bill", got.ResourceType)
	assert.Equal(t, billID.String(), got.ResourceID)
	require.NotNil(t, got.ActorID)
	assert.Equal(t, adminID, *got.ActorID)
	assert.Contains(t, got.Details, `"status":200`)
}

func TestAuditLog_SkipsReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.GET("/admin/payout-bills/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/payout-bills/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/admin/returns/:id/resolve", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "bad state"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/returns/"+uuid.NewString()+"/resolve", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouteAction(t *testing.T) {
	tests := []struct {
		route    string
		method   string
		action   domain.AuditAction
		resource string
	}{
		{"/admin/payout-bills/:id/review", http.MethodPost, domain.AuditActionReviewBill, "payout_bill"},
		{"/admin/payout-bills/:id/pay", http.MethodPost, domain.AuditActionMarkBillPaid, "payout_bill"},
		{"/admin/returns/:id/resolve", http.MethodPost, domain.AuditActionResolveDispute, "return_request"},
		{"/admin/payout-bills/:id/pay", http.MethodGet, "", ""},
		{"/webhooks/payments", http.MethodPost, "", ""},
	}

	for _, tc := range tests {
		action, resource := routeAction(tc.route, tc.method)
		assert.Equal(t, tc.action, action, "route=%s method=%s", tc.route, tc.method)
		assert.Equal(t, tc.resource, resource, "route=%s method=%s", tc.route, tc.method)
	}
}
