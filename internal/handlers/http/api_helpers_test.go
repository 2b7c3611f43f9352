package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/recruit-backend/internal/handlers/http"
	"github.com/rafabene/recruit-backend/internal/handlers/middleware"
	"github.com/rafabene/recruit-backend/internal/infrastructure/i18n"
	"github.com/rafabene/recruit-backend/internal/infrastructure/logging"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/dbtest"
	"github.com/rafabene/recruit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/recruit-backend/internal/services"
)

// tokenVerifier aceita tokens no formato "<papel>:<externalID>"
type tokenVerifier struct{}

func (tokenVerifier) Verify(_ context.Context, token string) (*ports.Identity, error) {
	role, externalID, ok := strings.Cut(token, ":")
	if !ok || externalID == "" {
		return nil, errors.New("malformed token")
	}
	return &ports.Identity{
		ExternalID: externalID,
		Email:      externalID + "@example.com",
		FirstName:  "Test",
		LastName:   externalID,
		Role:       role,
	}, nil
}

// identityEvents aceita a assinatura "valid" e lê o evento do próprio corpo
type identityEvents struct{}

type identityPayload struct {
	Type       string `json:"type"`
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func (identityEvents) VerifyIdentityEvent(payload []byte, headers map[string][]string) (*ports.IdentityEvent, error) {
	if sig := headers["Svix-Signature"]; len(sig) == 0 || sig[0] != "valid" {
		return nil, domainerrors.ErrInvalidWebhook
	}

	var body identityPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errors.Join(domainerrors.ErrInvalidWebhook, err)
	}
	return &ports.IdentityEvent{
		Type: ports.IdentityEventType(body.Type),
		Identity: ports.Identity{
			ExternalID: body.ExternalID,
			Email:      body.Email,
			Role:       body.Role,
		},
	}, nil
}

type memoryStorage struct {
	mu      sync.Mutex
	seq     int
	deleted []string
}

func (s *memoryStorage) Store(_ context.Context, obj ports.StoredObject) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if _, err := io.Copy(io.Discard, obj.Body); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://cdn.test/%ss/%s/%d-%s", obj.Role, obj.OwnerID, s.seq, obj.Filename), nil
}

func (s *memoryStorage) Delete(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

// stubBilling considera ativos apenas os clientes em active
type stubBilling struct {
	active map[string]bool
	event  *ports.BillingEvent
}

func (b *stubBilling) HasActiveSubscription(_ context.Context, customerID string) (bool, error) {
	return b.active[customerID], nil
}

func (b *stubBilling) CreateCustomer(_ context.Context, userID, _, _ string) (string, error) {
	return "cus_" + userID, nil
}

func (b *stubBilling) CreateCheckoutSession(_ context.Context, req ports.CheckoutRequest) (string, error) {
	return "https://checkout.test/" + req.CustomerID, nil
}

func (b *stubBilling) CreatePortalSession(_ context.Context, customerID, _ string) (string, error) {
	return "https://portal.test/" + customerID, nil
}

func (b *stubBilling) ParseWebhook(_ []byte, signature string) (*ports.BillingEvent, error) {
	if signature != "valid" {
		return nil, domainerrors.ErrInvalidWebhook
	}
	return b.event, nil
}

// testAPI é a API completa sobre sqlite em memória
type testAPI struct {
	t       *testing.T
	router  *gin.Engine
	users   repositories.UserRepository
	storage *memoryStorage
	billing *stubBilling
}

func newAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	db := dbtest.New(t)
	logger := logging.Nop()

	i18nService, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	coachRepo := postgres.NewCoachRepository(db)
	savedRepo := postgres.NewSavedPlayerRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	programRepo := postgres.NewProgramRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(db)

	storage := &memoryStorage{}
	billing := &stubBilling{active: map[string]bool{}}

	userService := services.NewUserService(userRepo, playerRepo, coachRepo, logger)
	guard := services.NewAuthGuard(userService, playerRepo, coachRepo)
	billingService := services.NewBillingService(userRepo, billing, "https://app.test", logger)
	accountService := services.NewAccountService(
		postgres.NewUnitOfWork(db),
		userRepo, playerRepo, coachRepo, savedRepo, noteRepo,
		storage, logger,
	)

	handlers := httphandlers.Handlers{
		Me:      httphandlers.NewMeHandler(guard, logger),
		Players: httphandlers.NewPlayerHandler(guard, services.NewPlayerService(playerRepo, billingService, storage, logger), logger),
		Coaches: httphandlers.NewCoachHandler(guard,
			services.NewCoachService(coachRepo, programRepo, playerRepo, savedRepo, storage, logger), logger),
		Notes: httphandlers.NewNoteHandler(guard, services.NewNoteService(noteRepo, playerRepo, logger), logger),
		Catalog: httphandlers.NewCatalogHandler(guard,
			services.NewProgramService(programRepo, coachRepo, logger),
			services.NewTournamentService(tournamentRepo, logger),
			logger),
		Billing: httphandlers.NewBillingHandler(guard, billingService, logger),
		Webhooks: httphandlers.NewWebhookHandler(
			services.NewIdentityWebhookService(identityEvents{}, userService, accountService, logger),
			billingService, logger),
	}

	router := gin.New()
	router.Use(httphandlers.Recovery(logger))
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, "https://api.test")
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(middleware.NewIdentityMiddleware(tokenVerifier{}, logger).Resolve())
	httphandlers.RegisterRoutes(router.Group("/api/v1"), handlers)

	return &testAPI{
		t:       t,
		router:  router,
		users:   userRepo,
		storage: storage,
		billing: billing,
	}
}

// do executa a requisição com o token informado ("" para anônimo)
func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) upload(path, token, filename string, content []byte) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(a.t, err)
	_, err = part.Write(content)
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) webhook(path string, headers map[string]string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(a.t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// signUpPlayer cria o perfil de atleta e retorna token e ID
func (a *testAPI) signUpPlayer(externalID string) (string, string) {
	a.t.Helper()
	token := "player:" + externalID

	w := a.do(http.MethodPost, "/api/v1/players", token, map[string]any{
		"graduationYear": 2026,
		"position":       "Pitcher",
		"phone":          "555-0100",
		"contactEmail":   externalID + "@contact.test",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return token, decode[dto.PlayerResponse](a.t, w).ID
}

// signUpCoach cria um programa e o perfil de técnico vinculado
func (a *testAPI) signUpCoach(externalID string) string {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/v1/programs", "admin:ext_admin", map[string]any{
		"name":     "State University " + externalID,
		"division": "D1",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	programID := decode[dto.ProgramResponse](a.t, w).ID

	token := "coach:" + externalID
	w = a.do(http.MethodPost, "/api/v1/coaches", token, map[string]any{"programId": programID})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type problem struct {
	Type   string                `json:"type"`
	Title  string                `json:"title"`
	Status int                   `json:"status"`
	Detail string                `json:"detail"`
	Errors []dto.ValidationError `json:"errors"`
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
