// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-schubfach/schubfach/internal/service"
)

var formatTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schubfach_format_total",
	Help: "Number of values formatted, by output shape.",
}, []string{"shape"})

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP service exposing /format and /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}
			return runServe(cmd.Context(), cfg.Serve.Addr, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	return cmd
}

type formatRequest struct {
	Value   string `json:"value"`
	Float32 bool   `json:"float32"`
}

type formatResponse struct {
	Formatted string `json:"formatted,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runServe(ctx context.Context, addr string, logger *zap.SugaredLogger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/format", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}
		var req formatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, formatResponse{Error: err.Error()})
			return
		}
		v, err := service.ParseValue(req.Value)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, formatResponse{Error: err.Error()})
			return
		}
		s, shape := service.Format(v, req.Float32)
		formatTotal.WithLabelValues(shape.String()).Inc()
		writeJSON(w, http.StatusOK, formatResponse{Formatted: s})
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
