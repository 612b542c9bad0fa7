package handlers

import (
	"context"

	"paywall/internal/gateway"
	"paywall/internal/models"
	"paywall/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID   int
	registerErr  error
	loginToken   string
	loginErr     error
	issueToken   string
	issueErr     error
	parseSession models.Session
	parseErr     error

	lastRegisterName  string
	lastRegisterEmail string
	lastLoginEmail    string
	lastIssueUserID   int
	lastIssueHasPaid  bool
	lastParseToken    string
}

func (m *mockAuth) Register(ctx context.Context, name, email, password string) (int, error) {
	m.lastRegisterName = name
	m.lastRegisterEmail = email
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginErr
}

func (m *mockAuth) IssueSession(userID int, hasPaid bool) (string, error) {
	m.lastIssueUserID = userID
	m.lastIssueHasPaid = hasPaid
	return m.issueToken, m.issueErr
}

func (m *mockAuth) ParseToken(token string) (models.Session, error) {
	m.lastParseToken = token
	return m.parseSession, m.parseErr
}

type mockPayment struct {
	order      gateway.Order
	orderErr   error
	confirmErr error

	orderCalls   int
	confirmCalls int

	lastConfirmUserID    int
	lastConfirmOrderID   string
	lastConfirmPaymentID string
	lastConfirmSignature string
}

func (m *mockPayment) CreateOrder(ctx context.Context) (gateway.Order, error) {
	m.orderCalls++
	return m.order, m.orderErr
}

func (m *mockPayment) Confirm(ctx context.Context, userID int, orderID, paymentID, signature string) error {
	m.confirmCalls++
	m.lastConfirmUserID = userID
	m.lastConfirmOrderID = orderID
	m.lastConfirmPaymentID = paymentID
	m.lastConfirmSignature = signature
	return m.confirmErr
}

type mockContact struct {
	err   error
	calls int

	lastName    string
	lastEmail   string
	lastMessage string
}

func (m *mockContact) Send(ctx context.Context, name, email, message string) error {
	m.calls++
	m.lastName = name
	m.lastEmail = email
	m.lastMessage = message
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
