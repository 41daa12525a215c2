package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsServer exposes /metrics and /healthz, it accepts no commands
type metricsServer struct {
	router *mux.Router
	app    *app
	server *http.Server
}

func newMetricsServer(a *app) *metricsServer {
	return &metricsServer{router: mux.NewRouter(), app: a}
}

func (ms *metricsServer) createHandler() http.Handler {
	ms.router.Handle("/metrics", promhttp.HandlerFor(ms.app.registry, promhttp.HandlerOpts{})).Methods("GET")
	ms.router.HandleFunc("/healthz", ms.healthz).Methods("GET")
	return ms.router
}

func (ms *metricsServer) healthz(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "ok",
		"platform": ms.app.service.Platform().String(),
		"monitors": ms.app.monitor.Active(),
	})
}

// start listens on addr and serves in the background
func (ms *metricsServer) start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	ms.server = &http.Server{Handler: ms.createHandler(), ReadHeaderTimeout: 10 * time.Second}
	ms.app.log.WithField("addr", listener.Addr().String()).Info("serving metrics")
	go func() {
		if err := ms.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			ms.app.log.WithError(err).Error("metrics server stopped")
		}
	}()
	return nil
}

func (ms *metricsServer) stop() {
	if ms.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ms.server.Shutdown(ctx); err != nil {
		ms.app.log.WithError(err).Warn("failed to stop metrics server")
	}
}
