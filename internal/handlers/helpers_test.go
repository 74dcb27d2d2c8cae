package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/hawkerwatch/hygiene-api/internal/middlewares"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// newAuthenticatedRequest builds a request carrying the user the way
// AuthMiddleware injects it.
func newAuthenticatedRequest(method, target string, body io.Reader, user *models.UserDB) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middlewares.WithUser(req.Context(), user))
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
