// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics provides prometheus metrics for the frame loop.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records frame statistics. It implements animate.Recorder.
type Collector struct {

	// Registry holds the collectors; it is separate from the
	// prometheus default registry.
	Registry *prometheus.Registry

	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	skipped       *prometheus.CounterVec
}

// NewCollector returns a new [Collector] with its metrics registered
// on a new registry.
func NewCollector() *Collector {
	mc := &Collector{
		Registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orrery",
			Name:      "frames_total",
			Help:      "Total number of animation frames updated",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "orrery",
			Name:      "frame_update_seconds",
			Help:      "Time spent updating the bodies in one frame",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orrery",
			Name:      "body_updates_skipped_total",
			Help:      "Body updates skipped because the body had no node",
		}, []string{"body"}),
	}
	mc.Registry.MustRegister(mc.frames, mc.frameDuration, mc.skipped)
	return mc
}

func (mc *Collector) Frame(d time.Duration) {
	mc.frames.Inc()
	mc.frameDuration.Observe(d.Seconds())
}

func (mc *Collector) Skipped(id string) {
	mc.skipped.WithLabelValues(id).Inc()
}

// Handler returns the http handler serving the metrics.
func (mc *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.Registry, promhttp.HandlerOpts{})
}

// Serve serves the metrics on /metrics at the given address until ctx
// is done, and then shuts the server down. Stopping because ctx is done
// is not an error.
func (mc *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", mc.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		errors.Log(srv.Shutdown(sctx))
	}()

	slog.Info("serving metrics", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
