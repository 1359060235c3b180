package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/resilience"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripeapi "github.com/stripe/stripe-go/v82"
)

const testWebhookSecret = "whsec_test"

type fakeCustomers struct {
	getResult *stripeapi.Customer
	getErr    error
	newErrs   []error
	newCalls  int
	lastNew   *stripeapi.CustomerParams
}

func (f *fakeCustomers) Get(_ string, _ *stripeapi.CustomerParams) (*stripeapi.Customer, error) {
	return f.getResult, f.getErr
}

func (f *fakeCustomers) New(params *stripeapi.CustomerParams) (*stripeapi.Customer, error) {
	f.newCalls++
	f.lastNew = params
	if len(f.newErrs) >= f.newCalls && f.newErrs[f.newCalls-1] != nil {
		return nil, f.newErrs[f.newCalls-1]
	}

	return &stripeapi.Customer{ID: "cus_new"}, nil
}

type fakeSessions struct {
	last *stripeapi.CheckoutSessionParams
	err  error
}

func (f *fakeSessions) New(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error) {
	f.last = params
	if f.err != nil {
		return nil, f.err
	}

	return &stripeapi.CheckoutSession{ID: "cs_test_1"}, nil
}

func newTestGateway(customers customerAPI, sessions checkoutSessionAPI) *gateway {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &gateway{
		customers:     customers,
		sessions:      sessions,
		webhookSecret: testWebhookSecret,
		breaker:       resilience.NewBreaker("stripe-test", &config.BreakerConfig{}, time.Second, logger, isClientError),
		logger:        logger,
	}
}

// signedHeader builds a Stripe-Signature header the same way Stripe does.
func signedHeader(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)

	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestParseWebhookEvent_CheckoutCompleted(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"created": 1767225600,
		"data": {"object": {"id": "cs_1", "object": "checkout.session", "customer": "cus_123"}}
	}`)
	g := newTestGateway(&fakeCustomers{}, &fakeSessions{})

	event, err := g.ParseWebhookEvent(payload, signedHeader(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, service.EventCheckoutSessionCompleted, event.Type)
	assert.Equal(t, "cus_123", event.CustomerID)
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), event.Created)
}

func TestParseWebhookEvent_SubscriptionUpdated(t *testing.T) {
	payload := []byte(`{
		"id": "evt_2",
		"object": "event",
		"type": "customer.subscription.updated",
		"created": 1767225600,
		"data": {"object": {"id": "sub_1", "object": "subscription", "customer": "cus_9", "status": "past_due"}}
	}`)
	g := newTestGateway(&fakeCustomers{}, &fakeSessions{})

	event, err := g.ParseWebhookEvent(payload, signedHeader(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "cus_9", event.CustomerID)
	assert.Equal(t, "past_due", event.SubscriptionStatus)
}

func TestParseWebhookEvent_BadSignature(t *testing.T) {
	payload := []byte(`{"id": "evt_3", "object": "event", "type": "checkout.session.completed"}`)
	g := newTestGateway(&fakeCustomers{}, &fakeSessions{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong secret", header: signedHeader(payload, "whsec_other", time.Now())},
		{name: "stale timestamp", header: signedHeader(payload, testWebhookSecret, time.Now().Add(-time.Hour))},
		{name: "missing header", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ParseWebhookEvent(payload, tt.header)
			assert.ErrorIs(t, err, service.ErrInvalidSignature)
		})
	}
}

func TestRetrieveCustomer(t *testing.T) {
	tests := []struct {
		name      string
		customers *fakeCustomers
		missing   bool
		wantErr   bool
	}{
		{name: "live customer", customers: &fakeCustomers{getResult: &stripeapi.Customer{ID: "cus_1"}}},
		{name: "deleted customer", customers: &fakeCustomers{getResult: &stripeapi.Customer{ID: "cus_1", Deleted: true}}, missing: true, wantErr: true},
		{
			name: "resource missing",
			customers: &fakeCustomers{getErr: &stripeapi.Error{
				Type: stripeapi.ErrorTypeInvalidRequest, Code: stripeapi.ErrorCodeResourceMissing, HTTPStatusCode: http.StatusNotFound,
			}},
			missing: true,
			wantErr: true,
		},
		{
			name: "invalid request for another mode",
			customers: &fakeCustomers{getErr: &stripeapi.Error{
				Type: stripeapi.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusBadRequest,
				Msg: "a similar object exists in live mode, but a test mode key was used",
			}},
			missing: true,
			wantErr: true,
		},
		{
			name: "stripe api failure",
			customers: &fakeCustomers{getErr: &stripeapi.Error{
				Type: stripeapi.ErrorTypeAPI, HTTPStatusCode: http.StatusInternalServerError,
			}},
			wantErr: true,
		},
		{name: "transport failure", customers: &fakeCustomers{getErr: errors.New("connection reset")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(tt.customers, &fakeSessions{})

			err := g.RetrieveCustomer(context.Background(), "cus_1")
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.missing, errors.Is(err, service.ErrCustomerMissing))
		})
	}
}

func TestCreateCustomer_RetriesOnce(t *testing.T) {
	customers := &fakeCustomers{newErrs: []error{errors.New("timeout")}}
	g := newTestGateway(customers, &fakeSessions{})
	userID := uuid.New()

	id, err := g.CreateCustomer(context.Background(), service.CustomerParams{LocalUserID: userID, Email: "a@b.mx", Name: "uid-1"})
	require.NoError(t, err)
	assert.Equal(t, "cus_new", id)
	assert.Equal(t, 2, customers.newCalls)
	assert.Equal(t, userID.String(), customers.lastNew.Metadata[metadataLocalUser])
	require.NotNil(t, customers.lastNew.IdempotencyKey)
}

func TestCreateCustomer_DoesNotRetryInvalidRequest(t *testing.T) {
	customers := &fakeCustomers{newErrs: []error{&stripeapi.Error{Type: stripeapi.ErrorTypeInvalidRequest}}}
	g := newTestGateway(customers, &fakeSessions{})

	_, err := g.CreateCustomer(context.Background(), service.CustomerParams{LocalUserID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, 1, customers.newCalls)
}

func TestCreateCheckoutSession(t *testing.T) {
	sessions := &fakeSessions{}
	g := newTestGateway(&fakeCustomers{}, sessions)

	id, err := g.CreateCheckoutSession(context.Background(), service.CheckoutSessionParams{
		CustomerID: "cus_1",
		PriceID:    "price_monthly",
		SuccessURL: "https://mercado.mx/subscription/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://mercado.mx/subscription/canceled",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", id)
	assert.Equal(t, "subscription", *sessions.last.Mode)
	assert.Equal(t, "price_monthly", *sessions.last.LineItems[0].Price)
	assert.Equal(t, int64(1), *sessions.last.LineItems[0].Quantity)
	assert.Nil(t, sessions.last.ClientReferenceID)
}
