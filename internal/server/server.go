// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package server serves a web form that turns a pasted HTTP request
// into a proof-of-concept page.
package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"zombiezen.com/go/markup/httpreq"
	"zombiezen.com/go/markup/internal/config"
	"zombiezen.com/go/markup/poc"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index.html").Parse(indexHTML))

// Result label values for the documents counter.
const (
	resultOK      = "ok"
	resultInvalid = "invalid"
	resultError   = "error"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end.
type Server struct {
	cfg      *config.Config
	pocOpts  *poc.Options
	logger   *slog.Logger
	validate *validator.Validate
	minifier *minify.M
	registry *prometheus.Registry
	docs     *prometheus.CounterVec
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the server's logger.
// The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New returns a new server for the given configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		cfg:      cfg,
		pocOpts:  cfg.POCOptions(),
		logger:   slog.Default(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		registry: prometheus.NewRegistry(),
		docs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csrfpoc",
			Name:      "documents_total",
			Help:      "Number of proof-of-concept requests by result.",
		}, []string{"result"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry.MustRegister(s.docs)
	if cfg.MinifyPage {
		s.minifier = minify.New()
		s.minifier.AddFunc("text/html", html.Minify)
	}
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.index)
	r.Post("/", s.generate)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves on the configured address until ctx is done,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.cfg.Listen)

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

type pageData struct {
	Alert    bool
	POC      string
	InputReq string
	Protocol string
}

// generateForm is the submitted input form.
type generateForm struct {
	InputReq string `validate:"required"`
	Protocol string `validate:"oneof=http https"`
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, &pageData{Protocol: string(httpreq.HTTP)})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := generateForm{
		InputReq: r.PostFormValue("input_req"),
		Protocol: r.PostFormValue("protocol"),
	}
	if form.Protocol == "" {
		form.Protocol = string(httpreq.HTTP)
	}
	data := &pageData{InputReq: form.InputReq, Protocol: form.Protocol}
	if err := s.validate.Struct(form); err != nil {
		s.logger.WarnContext(ctx, "invalid form", "error", err, "request_id", middleware.GetReqID(ctx))
		s.docs.WithLabelValues(resultInvalid).Inc()
		data.Alert = true
		s.render(w, r, http.StatusBadRequest, data)
		return
	}

	req, err := httpreq.Parse(form.InputReq, httpreq.Scheme(form.Protocol))
	if err != nil {
		s.logger.WarnContext(ctx, "invalid request", "error", err, "request_id", middleware.GetReqID(ctx))
		s.docs.WithLabelValues(resultInvalid).Inc()
		data.Alert = true
		s.render(w, r, http.StatusBadRequest, data)
		return
	}
	data.POC, err = poc.Build(req, s.pocOpts)
	if err != nil {
		s.logger.ErrorContext(ctx, "build proof of concept", "error", err, "request_id", middleware.GetReqID(ctx))
		s.docs.WithLabelValues(resultError).Inc()
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.docs.WithLabelValues(resultOK).Inc()
	s.logger.InfoContext(ctx, "generated proof of concept",
		"method", req.Method,
		"url", req.URL,
		"fields", len(req.Fields),
		"request_id", middleware.GetReqID(ctx),
	)
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	buf := new(bytes.Buffer)
	if err := indexTemplate.Execute(buf, data); err != nil {
		s.logger.ErrorContext(r.Context(), "render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	page := buf.Bytes()
	if s.minifier != nil {
		var err error
		page, err = s.minifier.Bytes("text/html", page)
		if err != nil {
			// Serve the page as-is.
			s.logger.WarnContext(r.Context(), "minify page", "error", err)
			page = buf.Bytes()
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(page)
}
