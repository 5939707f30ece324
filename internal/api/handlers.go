package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/petpal/foodcheck/internal/service"
)

// NewRouter wires all routes.
func NewRouter(safety *service.SafetyService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", handleWelcome)
	r.Get("/healthz", handleHealth)
	r.Get("/is-safe", handleIsSafe(safety))
	r.Get("/api/check", handleCheck(safety))

	return r
}

func handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to PetPal API - check if a food is safe for your pet!")) //nolint:errcheck
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /is-safe ---

type isSafeResponse struct {
	Source string `json:"source"`
	Pet    string `json:"pet"`
	Food   string `json:"food"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func handleIsSafe(safety *service.SafetyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet := r.URL.Query().Get("pet")
		food := r.URL.Query().Get("food")
		if pet == "" || food == "" {
			jsonError(w, "Please provide both 'pet' and 'food' parameters.", http.StatusBadRequest)
			return
		}

		verdict, err := safety.Check(r.Context(), pet, food)
		if err != nil {
			slog.Error("is-safe check failed", "pet", pet, "food", food, "error", err)
			jsonServerError(w)
			return
		}

		jsonOK(w, isSafeResponse{
			Source: verdict.Source,
			Pet:    verdict.Record.Pet,
			Food:   verdict.Record.Food,
			Status: verdict.Record.Status,
			Reason: verdict.Record.Reason,
		})
	}
}

// --- GET /api/check ---

type checkResponse struct {
	Source string `json:"source"`
	Animal string `json:"animal"`
	Pet    string `json:"pet"`
	Food   string `json:"food"`
	Safe   bool   `json:"safe"`
	Status string `json:"status"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// handleCheck is a compatibility shim over the same pipeline: it accepts
// 'animal' as an alias for 'pet' and projects the verdict into the legacy
// client shape with a derived boolean and duplicated notes field.
func handleCheck(safety *service.SafetyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pet := r.URL.Query().Get("pet")
		if pet == "" {
			pet = r.URL.Query().Get("animal")
		}
		food := r.URL.Query().Get("food")
		if pet == "" || food == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
				"error":   "Please provide both 'pet' (or 'animal') and 'food' parameters.",
				"example": "/api/check?pet=dog&food=grapes",
			})
			return
		}

		verdict, err := safety.Check(r.Context(), pet, food)
		if err != nil {
			slog.Error("check failed", "pet", pet, "food", food, "error", err)
			jsonServerError(w)
			return
		}

		jsonOK(w, checkResponse{
			Source: verdict.Source,
			Animal: pet,
			Pet:    pet,
			Food:   food,
			Safe:   verdict.Record.Status == service.StatusSafe,
			Status: verdict.Record.Status,
			Reason: verdict.Record.Reason,
			Notes:  verdict.Record.Reason,
		})
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}

// jsonServerError hides internal detail from the caller; the cause is
// logged server-side only.
func jsonServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"error":   "Something went wrong",
		"message": "Please try again later or consult a vet.",
	})
}
