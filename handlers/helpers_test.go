package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"shopfront/config"
	"shopfront/handlers"
	"shopfront/middleware"
	"shopfront/models"
	"shopfront/payments"
	"shopfront/store"
)

var jwtSecret = []byte(os.Getenv("SESSION_SECRET"))

const sessionCookieName = "shopfront_session"

// memUsers is an in-memory store.UserStore with the same duplicate
// and not-found semantics as the Postgres implementation.
type memUsers struct {
	nextID  int64
	byID    map[int64]*models.User
	byEmail map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{
		byID:    map[int64]*models.User{},
		byEmail: map[string]*models.User{},
	}
}

func (s *memUsers) Create(name, email, passwordHash, last4, customerID string) (*models.User, error) {
	if _, exists := s.byEmail[email]; exists {
		return nil, store.ErrDuplicateEmail
	}
	s.nextID++
	user := &models.User{
		ID:               s.nextID,
		Name:             name,
		Email:            email,
		PasswordHash:     passwordHash,
		Last4Digits:      last4,
		StripeCustomerID: customerID,
		CreatedAt:        time.Now(),
	}
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return user, nil
}

func (s *memUsers) GetByID(id int64) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (s *memUsers) GetByEmail(email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

// memContacts keeps the newest-first listing contract of the Postgres
// store.
type memContacts struct {
	nextID   int64
	contacts []models.Contact
}

func (s *memContacts) Create(name, email, topic, message string) (*models.Contact, error) {
	s.nextID++
	contact := models.Contact{
		ID:        s.nextID,
		Name:      name,
		Email:     email,
		Topic:     topic,
		Message:   message,
		CreatedAt: time.Now().Add(time.Duration(s.nextID) * time.Second),
	}
	s.contacts = append(s.contacts, contact)
	return &contact, nil
}

func (s *memContacts) List() ([]models.Contact, error) {
	out := append([]models.Contact(nil), s.contacts...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type gatewayCall struct {
	description, email, cardToken, plan string
}

type stubGateway struct {
	calls    []gatewayCall
	customer *payments.Customer
	err      error
}

func (g *stubGateway) CreateSubscription(description, email, cardToken, plan string) (*payments.Customer, error) {
	g.calls = append(g.calls, gatewayCall{description, email, cardToken, plan})
	if g.err != nil {
		return nil, g.err
	}
	return g.customer, nil
}

func (g *stubGateway) CreateOneTimeCharge(description, cardToken string, amount int64, currency string) (*payments.Charge, error) {
	return nil, nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUsers
	contacts *memContacts
	gateway  *stubGateway
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    newMemUsers(),
		contacts: &memContacts{},
		gateway:  &stubGateway{customer: &payments.Customer{ID: "cus_123"}},
	}

	cfg := config.Config{StripePublishableKey: "pk_test_123"}
	h := handlers.New(env.users, env.contacts, env.gateway, cfg)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	r.Use(middleware.SessionLoader())

	r.GET("/", h.Index)
	r.GET("/contact", h.ShowContact)
	r.POST("/contact", h.SubmitContact)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/sign_in", h.ShowSignIn)
	r.POST("/sign_in", h.SignIn)
	r.GET("/sign_out", h.SignOut)
	r.GET("/api/contacts", h.ListContacts)

	env.router = r
	return env
}

func (env *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFor(t *testing.T, id int64, email string) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookieName, Value: signed}
}

// responseSessionCookie returns the session cookie the handler set, if
// any.
func responseSessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

// sessionUserID decodes the user id claim from a session cookie value.
func sessionUserID(t *testing.T, cookie *http.Cookie) int64 {
	t.Helper()
	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	id, ok := claims["user_id"].(float64)
	require.True(t, ok)
	return int64(id)
}
