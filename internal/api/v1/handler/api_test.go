package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"edumarket/internal/api/v1/dto"
	"edumarket/internal/middleware"
	"edumarket/internal/model"
	"edumarket/internal/repository/inmem"
	"edumarket/internal/security"
	"edumarket/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// newTestAPI wires the full handler stack over the in-memory store, mirroring
// router.New without the DB and CORS layers.
func newTestAPI(t *testing.T) (http.Handler, *inmem.Store, *security.TokenManager) {
	t.Helper()

	store := inmem.NewStore()
	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := security.NewTokenManager("test-secret")
	hasher := security.NewPasswordHasher()
	logger := zerolog.Nop()

	accountRepo := inmem.NewAccountRepo(store)
	courseRepo := inmem.NewCourseRepo(store)
	institutionRepo := inmem.NewInstitutionRepo(store)
	profileRepo := inmem.NewProfileRepo(store)

	authHandler := NewAuthHandler(service.NewAuthService(accountRepo, hasher, tokens), validate, logger)
	courseHandler := NewCourseHandler(service.NewCourseService(courseRepo), logger)
	institutionHandler := NewInstitutionHandler(service.NewInstitutionService(institutionRepo), logger)
	userHandler := NewUserHandler(service.NewUserService(accountRepo, profileRepo), validate, logger)

	apiMux := http.NewServeMux()
	authHandler.RegisterRoutes(apiMux)
	courseHandler.RegisterRoutes(apiMux)
	institutionHandler.RegisterRoutes(apiMux)
	userHandler.RegisterRoutes(apiMux, middleware.AuthMiddleware(tokens))

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))
	return mux, store, tokens
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestAuthScenario(t *testing.T) {
	h, _, _ := newTestAPI(t)

	// Register
	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "secret", "fullName": "Ada Lovelace",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var reg dto.AuthResponseDTO
	decode(t, rec, &reg)
	if reg.Token == "" {
		t.Fatal("register: expected a token")
	}
	if reg.Account.Email != "a@x.com" || reg.Account.Name != "Ada Lovelace" {
		t.Fatalf("register: unexpected account projection %+v", reg.Account)
	}

	// Login with the wrong password
	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad login: expected 400, got %d", rec.Code)
	}

	// Login with the right password
	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var login dto.AuthResponseDTO
	decode(t, rec, &login)
	if login.Account.ID != reg.Account.ID {
		t.Fatalf("login returned account %q, registered %q", login.Account.ID, reg.Account.ID)
	}

	// Fetch the fresh profile
	rec = doJSON(t, h, http.MethodGet, "/api/me", login.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var profile dto.ProfileResponseDTO
	decode(t, rec, &profile)
	if profile.ID != reg.Account.ID {
		t.Errorf("me: expected account %q, got %q", reg.Account.ID, profile.ID)
	}
	if len(profile.SavedCourses) != 0 || len(profile.RegisteredCourses) != 0 || len(profile.Certificates) != 0 {
		t.Errorf("me: expected empty collections, got %+v", profile)
	}
	// The arrays must be present (empty, not null) for the client.
	var raw map[string]json.RawMessage
	decode(t, rec, &raw)
	for _, key := range []string{"savedCourses", "registeredCourses", "certificates"} {
		if string(raw[key]) == "null" {
			t.Errorf("me: %s must be an empty array, not null", key)
		}
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	h, _, _ := newTestAPI(t)

	body := map[string]string{"email": "a@x.com", "password": "secret", "fullName": "Ada"}
	if rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}
	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
	var errBody map[string]string
	decode(t, rec, &errBody)
	if errBody["message"] != "User already exists" {
		t.Errorf("unexpected conflict message %q", errBody["message"])
	}
}

func TestRegisterValidation(t *testing.T) {
	h, _, _ := newTestAPI(t)

	cases := []map[string]string{
		{"email": "not-an-email", "password": "secret", "fullName": "Ada"},
		{"email": "a@x.com", "password": "short", "fullName": ""},
		{},
	}
	for _, body := range cases {
		if rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", body); rec.Code != http.StatusBadRequest {
			t.Errorf("register %v: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h, _, _ := newTestAPI(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/me"},
		{http.MethodPost, "/api/me/saved"},
		{http.MethodPost, "/api/me/registrations"},
	}
	for _, p := range paths {
		if rec := doJSON(t, h, p.method, p.path, "", nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", p.method, p.path, rec.Code)
		}
		if rec := doJSON(t, h, p.method, p.path, "garbage", nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s with bad token: expected 401, got %d", p.method, p.path, rec.Code)
		}
	}
}

func TestMeForDeletedAccount(t *testing.T) {
	h, store, tokens := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "secret", "fullName": "Ada",
	})
	var reg dto.AuthResponseDTO
	decode(t, rec, &reg)

	store.DeleteAccount(reg.Account.ID)

	// The token still verifies but the account row is gone.
	if _, err := tokens.Validate(reg.Token); err != nil {
		t.Fatalf("token should still verify: %v", err)
	}
	if rec := doJSON(t, h, http.MethodGet, "/api/me", reg.Token, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("me for deleted account: expected 404, got %d", rec.Code)
	}
}

func TestToggleSavedEndpoint(t *testing.T) {
	h, store, _ := newTestAPI(t)
	courseID := store.AddCourse(model.Course{Title: "UX/UI Design Fundamentals", Category: "Diseño"})

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "secret", "fullName": "Ada",
	})
	var reg dto.AuthResponseDTO
	decode(t, rec, &reg)

	var toggle dto.ToggleSavedResponseDTO
	rec = doJSON(t, h, http.MethodPost, "/api/me/saved", reg.Token, map[string]int64{"courseId": courseID})
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	decode(t, rec, &toggle)
	if !toggle.Saved {
		t.Fatal("first toggle: expected saved=true")
	}

	rec = doJSON(t, h, http.MethodPost, "/api/me/saved", reg.Token, map[string]int64{"courseId": courseID})
	decode(t, rec, &toggle)
	if toggle.Saved {
		t.Fatal("second toggle: expected saved=false")
	}
}

func TestRegisterCourseEndpointIsIdempotent(t *testing.T) {
	h, store, _ := newTestAPI(t)
	courseID := store.AddCourse(model.Course{Title: "Bootcamp", Category: "Tecnología"})

	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "password": "secret", "fullName": "Ada",
	})
	var reg dto.AuthResponseDTO
	decode(t, rec, &reg)

	for i := 0; i < 2; i++ {
		rec = doJSON(t, h, http.MethodPost, "/api/me/registrations", reg.Token, map[string]int64{"courseId": courseID})
		if rec.Code != http.StatusOK {
			t.Fatalf("enroll call %d: expected 200, got %d", i+1, rec.Code)
		}
		var resp dto.RegisterCourseResponseDTO
		decode(t, rec, &resp)
		if !resp.Enrolled {
			t.Fatalf("enroll call %d: expected enrolled=true", i+1)
		}
	}
	if n := store.RegisteredCount(reg.Account.ID); n != 1 {
		t.Fatalf("expected exactly 1 enrollment row, got %d", n)
	}
}

func TestCourseEndpoints(t *testing.T) {
	h, store, _ := newTestAPI(t)
	store.AddCourse(model.Course{Title: "Bootcamp", Category: "Tecnología", Description: "Aprende Scrum"})
	designID := store.AddCourse(model.Course{Title: "UX/UI Design Fundamentals", Category: "Diseño"})

	rec := doJSON(t, h, http.MethodGet, "/api/courses", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var all []dto.CourseResponseDTO
	decode(t, rec, &all)
	if len(all) != 2 {
		t.Fatalf("list: expected 2 courses, got %d", len(all))
	}

	rec = doJSON(t, h, http.MethodGet, "/api/courses?category=Dise%C3%B1o", "", nil)
	var filtered []dto.CourseResponseDTO
	decode(t, rec, &filtered)
	if len(filtered) != 1 || filtered[0].Category != "Diseño" {
		t.Fatalf("category filter: unexpected result %+v", filtered)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/courses?search=scrum", "", nil)
	var searched []dto.CourseResponseDTO
	decode(t, rec, &searched)
	if len(searched) != 1 || searched[0].Title != "Bootcamp" {
		t.Fatalf("search filter: unexpected result %+v", searched)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/courses/"+itoa(designID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var one dto.CourseResponseDTO
	decode(t, rec, &one)
	if one.ID != designID {
		t.Fatalf("get: expected course %d, got %d", designID, one.ID)
	}

	if rec := doJSON(t, h, http.MethodGet, "/api/courses/999", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing id: expected 404, got %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, "/api/courses/abc", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("non-numeric id: expected 404, got %d", rec.Code)
	}
}

func TestInstitutionEndpoints(t *testing.T) {
	h, store, _ := newTestAPI(t)
	id := store.AddInstitution(model.Institution{Name: "Tech University", Rating: 4.8})

	rec := doJSON(t, h, http.MethodGet, "/api/institutions", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var all []dto.InstitutionResponseDTO
	decode(t, rec, &all)
	if len(all) != 1 || all[0].Name != "Tech University" {
		t.Fatalf("list: unexpected result %+v", all)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/institutions/"+itoa(id), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	if rec := doJSON(t, h, http.MethodGet, "/api/institutions/999", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing id: expected 404, got %d", rec.Code)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
