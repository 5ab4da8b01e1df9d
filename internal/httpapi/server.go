package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notifyd/internal/hub"
	"notifyd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Notify(n types.Notification) error
	NotifyAsync(ctx context.Context, n types.Notification) error
	Subscribers(name string) (syncCount, asyncCount int)
	Mediators() []types.MediatorStatus
	Status() types.StatusResponse
}

// NewMux registers /notify, /notify/async, /mediators, /status, /healthz,
// /readyz and /metrics on a chi router wrapping svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	// Publish godoc
	// @Summary      Broadcast a notification synchronously
	// @Accept       json
	// @Produce      json
	// @Param        request body types.PublishRequest true "notification"
	// @Success      200 {object} types.PublishResponse
	// @Failure      400 {object} types.ErrorResponse
	// @Failure      502 {object} types.ErrorResponse
	// @Router       /notify [post]
	r.Post("/notify", func(w http.ResponseWriter, r *http.Request) {
		n, ok := decodePublish(w, r)
		if !ok {
			return
		}
		lvl := requestLogLevel(r)
		start := time.Now()
		delivered, _ := svc.Subscribers(n.Name)
		if err := svc.Notify(n); err != nil {
			logNotify(r, lvl, n.Name, http.StatusBadGateway, start, err)
			writeJSONError(w, http.StatusBadGateway, err.Error())
			return
		}
		logNotify(r, lvl, n.Name, http.StatusOK, start, nil)
		writeJSON(w, types.PublishResponse{Name: n.Name, Delivered: delivered})
	})

	// PublishAsync godoc
	// @Summary      Broadcast a notification to asynchronous observers
	// @Accept       json
	// @Produce      json
	// @Param        request body types.PublishRequest true "notification"
	// @Success      200 {object} types.PublishResponse
	// @Failure      400 {object} types.ErrorResponse
	// @Failure      502 {object} types.ErrorResponse
	// @Router       /notify/async [post]
	r.Post("/notify/async", func(w http.ResponseWriter, r *http.Request) {
		n, ok := decodePublish(w, r)
		if !ok {
			return
		}
		lvl := requestLogLevel(r)
		start := time.Now()
		_, delivered := svc.Subscribers(n.Name)

		// Join server base context with request context so shutdown cancels
		// in-flight handlers too.
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		if sec := dispatchTimeout; sec > 0 {
			var tcancel context.CancelFunc
			joinedCtx, tcancel = context.WithTimeout(joinedCtx, time.Duration(sec)*time.Second)
			defer tcancel()
		}

		if err := svc.NotifyAsync(joinedCtx, n); err != nil {
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := http.StatusInternalServerError
			if hub.IsDispatchFailed(err) {
				status = http.StatusBadGateway
			} else if he, ok := err.(HTTPError); ok {
				status = he.StatusCode()
			}
			logNotify(r, lvl, n.Name, status, start, err)
			writeJSONError(w, status, err.Error())
			return
		}
		logNotify(r, lvl, n.Name, http.StatusOK, start, nil)
		writeJSON(w, types.PublishResponse{Name: n.Name, Delivered: delivered})
	})

	// Mediators godoc
	// @Summary      List registered mediators
	// @Produce      json
	// @Success      200 {object} map[string][]types.MediatorStatus
	// @Router       /mediators [get]
	r.Get("/mediators", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"mediators": svc.Mediators()})
	})

	// Status godoc
	// @Summary      Hub status snapshot
	// @Produce      json
	// @Success      200 {object} types.StatusResponse
	// @Router       /status [get]
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// The hub serves as soon as it exists; readiness equals liveness.
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodePublish validates and decodes a publish payload, writing the error
// response itself when the request is malformed.
func decodePublish(w http.ResponseWriter, r *http.Request) (types.Notification, bool) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return types.Notification{}, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return types.Notification{}, false
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return types.Notification{}, false
	}
	n := types.Notification{Name: req.Name, Body: req.Body, Type: req.Type}
	if req.Sender != "" {
		n.Sender = req.Sender
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

func logNotify(r *http.Request, lvl LogLevel, name string, status int, start time.Time, err error) {
	if zlog == nil {
		return
	}
	// errors log from LevelError up, successes from LevelInfo up
	if lvl < LevelInfo && (err == nil || lvl < LevelError) {
		return
	}
	ev := zlog.Info()
	if err != nil {
		ev = zlog.Error().Err(err)
	}
	z := ev.Str("path", r.URL.Path).Str("name", name).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("notify")
}
