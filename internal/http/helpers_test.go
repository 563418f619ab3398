package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tazhibayda/jewel-service/internal/domain"
	api "github.com/tazhibayda/jewel-service/internal/http"
	"github.com/tazhibayda/jewel-service/internal/payments"
	"github.com/tazhibayda/jewel-service/internal/queue"
)

const (
	testJWTSecret   = "test-secret"
	testAdminMobile = "9999999999"
	testRzpSecret   = "test_key_secret"
)

// memStore is an in-memory stand-in for repo.Store with the same contracts:
// unique mobile numbers, unique payment ids, newest-first notification order.
type memStore struct {
	mu            sync.Mutex
	users         []domain.User
	rates         *domain.Rates
	payments      []domain.Payment
	notifications []domain.Notification

	failNotify bool
}

func (m *memStore) Ping(ctx context.Context) error { return nil }

func (m *memStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.MobileNumber == u.MobileNumber {
			return domain.ErrDuplicateUser
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	m.users = append(m.users, *u)
	return nil
}

func (m *memStore) FindUserByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.MobileNumber == mobile {
			u := e
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.ID == id {
			u := e
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateMpin(ctx context.Context, mobile, mpinHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].MobileNumber == mobile {
			m.users[i].MpinHash = mpinHash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) GetCurrentRates(ctx context.Context) (*domain.Rates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rates == nil {
		m.rates = &domain.Rates{ID: primitive.NewObjectID(), UpdatedAt: time.Now().UTC()}
	}
	r := *m.rates
	return &r, nil
}

func (m *memStore) ReplaceCurrentRates(ctx context.Context, gold domain.GoldRate, silver domain.SilverRate) (*domain.Rates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rates == nil {
		m.rates = &domain.Rates{ID: primitive.NewObjectID()}
	}
	m.rates.GoldRate = gold
	m.rates.SilverRate = silver
	m.rates.UpdatedAt = time.Now().UTC()
	r := *m.rates
	return &r, nil
}

func (m *memStore) InsertPayment(ctx context.Context, p *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.payments {
		if e.RazorpayPaymentID == p.RazorpayPaymentID {
			return domain.ErrDuplicatePayment
		}
	}
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	m.payments = append(m.payments, *p)
	return nil
}

func (m *memStore) InsertNotification(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNotify {
		return errors.New("notification store down")
	}
	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	// prepend: listing is newest-first
	m.notifications = append([]domain.Notification{*n}, m.notifications...)
	return nil
}

func (m *memStore) ListNotifications(ctx context.Context, role domain.Role, userID *primitive.ObjectID) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Notification{}
	for _, n := range m.notifications {
		if n.TargetRole != role {
			continue
		}
		if role != domain.RoleAdmin && userID != nil {
			if n.TargetUserID == nil || *n.TargetUserID != *userID {
				continue
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *memStore) MarkNotificationRead(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].ID == id {
			m.notifications[i].IsRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type testEnv struct {
	Store  *memStore
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{}
	gw := payments.NewGateway("rzp_test_key", testRzpSecret)
	h := api.NewHandler(store, testJWTSecret, 72, map[string]bool{testAdminMobile: true},
		gw, nil, 0, queue.NewNoop())
	return &testEnv{Store: store, Router: api.NewRouter(h)}
}

func (e *testEnv) do(method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	e.Router.ServeHTTP(w, req)
	return w
}

func bearer(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}
