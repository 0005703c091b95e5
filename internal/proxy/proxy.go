// Package proxy implements the stateless relay between the order grid and
// the spreadsheet-backed web service. It forwards requests verbatim, passes
// upstream status and body through untouched, and adds permissive
// cross-origin headers so a browser-hosted grid can reach it too.
package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 25 << 20
)

// Handler relays requests to a fixed upstream URL.
type Handler struct {
	upstream *url.URL
	client   *http.Client
}

// New builds a Handler forwarding to the given upstream URL.
func New(upstream string, timeout time.Duration) (*Handler, error) {
	trimmed := strings.TrimSpace(upstream)
	if trimmed == "" {
		return nil, fmt.Errorf("upstream url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url %q: %w", upstream, err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{
		upstream: u,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := shortID()
	started := time.Now()

	writeCORSHeaders(w)
	if r.Method == http.MethodOptions {
		// Preflight: 200 with an empty body.
		w.WriteHeader(http.StatusOK)
		log.Printf("[%s] %s %s -> 200 preflight", reqID, r.Method, r.URL.Path)
		return
	}

	status, err := h.relay(w, r)
	if err != nil {
		writeError(w, err)
		log.Printf("[%s] %s %s -> 500 relay failed: %v", reqID, r.Method, r.URL.Path, err)
		return
	}
	log.Printf("[%s] %s %s -> %d (%s)", reqID, r.Method, r.URL.Path, status, time.Since(started).Round(time.Millisecond))
}

// relay forwards the request to the upstream and copies status and body
// back verbatim. It returns the upstream status for logging.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request) (int, error) {
	body := io.Reader(nil)
	if r.Body != nil {
		body = io.LimitReader(r.Body, maxBodyBytes)
	}

	out, err := http.NewRequestWithContext(r.Context(), r.Method, h.upstream.String(), body)
	if err != nil {
		return 0, fmt.Errorf("create upstream request: %w", err)
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		out.Header.Set("Content-Type", ct)
	}
	if accept := r.Header.Get("Accept"); accept != "" {
		out.Header.Set("Accept", accept)
	}

	resp, err := h.client.Do(out)
	if err != nil {
		return 0, fmt.Errorf("reach upstream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.StatusCode, nil
}

func writeCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func shortID() string {
	return uuid.NewString()[:8]
}
