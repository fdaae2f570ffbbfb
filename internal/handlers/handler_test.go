// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Every test gets a fresh SQLite store and an in-process Valkey.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"inkpress/internal/cache"
	"inkpress/internal/content"
	"inkpress/internal/database"
	"inkpress/internal/models"
	"inkpress/internal/search"
	"inkpress/internal/store"
)

// testEnv bundles the API with the pieces tests poke at directly.
type testEnv struct {
	api     *API
	svc     *content.Service
	engine  *search.Engine
	history *cache.History
	popular *cache.Popular
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "handlers.db") + "?_busy_timeout=5000"
	h := database.NewHandle(database.DriverSQLite, dsn)
	db, err := h.Open(context.Background())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { h.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := content.NewService(store.New(db), content.WithBcryptCost(bcrypt.MinCost))
	history := cache.NewHistory(client, "")
	popular := cache.NewPopular(client, "")
	engine := search.NewEngine(svc,
		search.WithHistory(search.RecorderFunc(history.Add)),
		search.WithAnalytics(search.RecorderFunc(popular.Track)),
	)
	t.Cleanup(engine.Close)

	return &testEnv{
		api:     NewAPI(svc, engine, history, popular),
		svc:     svc,
		engine:  engine,
		history: history,
		popular: popular,
	}
}

// serve mounts h at pattern on a fresh chi router and sends one request.
// body, when non-nil, is JSON-encoded unless it is already a string.
func serve(t *testing.T, h http.HandlerFunc, method, pattern, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals the recorder body into a T.
func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func wantStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d (body %s)", rr.Code, want, rr.Body.String())
	}
}

func (e *testEnv) article(t *testing.T, a models.Article) *models.Article {
	t.Helper()
	out, err := e.svc.CreateArticle(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateArticle(%q): %v", a.Title, err)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
