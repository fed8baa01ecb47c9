// Package remote exposes the converter over HTTP so hosts without a
// local toolchain can get images encoded.
package remote

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/xid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"qoiscreen/pkg/convert"
)

// ContentType marks QOI payloads in HTTP exchanges.
const ContentType = "image/qoi"

// Proxy wires the encode handler into srv and binds its lifetime to the
// fx application.
func Proxy(conv *convert.Converter, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	mux := http.NewServeMux()
	mux.Handle("/encode", NewHandler(conv, logger))
	srv.Handler = mux

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.Fatal("listen failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

func NewHandler(conv *convert.Converter, logger *zap.Logger) *Handler {
	return &Handler{conv: conv, log: logger}
}

// Handler accepts a POSTed image blob and answers with the QOI stream.
type Handler struct {
	conv *convert.Converter
	log  *zap.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST an image", http.StatusMethodNotAllowed)
		return
	}

	log := h.log.With(zap.String("req", xid.New().String()))

	src, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := h.conv.Bytes(src)
	if err != nil {
		log.With(zap.Error(err)).Info("encode failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log.With(zap.Int("in", len(src)), zap.Int("out", len(out))).Debug("encoded")

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
