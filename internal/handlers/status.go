package handlers

import (
	"log/slog"
	"net/http"

	"clothingshop/internal/config"
	"clothingshop/internal/store"
)

// StatusHandler serves the root banner and the /test diagnostic.
type StatusHandler struct {
	store  *store.Mongo
	mongo  config.MongoConfig
	logger *slog.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(st *store.Mongo, mongo config.MongoConfig, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{store: st, mongo: mongo, logger: logger}
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Clothing Shop Backend Running"}, h.logger)
}

// Test handles GET /test. It always returns 200; the body reports backend
// and database availability, whether the connection env vars are set, and
// up to 10 collection names. Error text is truncated to 50 characters.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		names, err := h.store.CollectionNames(r.Context())
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = setFlag(h.mongo.URISet)
	response["database_name"] = setFlag(h.mongo.DatabaseSet)

	WriteJSON(w, http.StatusOK, response, h.logger)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
