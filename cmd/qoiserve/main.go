package main

import (
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"qoiscreen/pkg/convert"
	"qoiscreen/pkg/remote"
)

var listen = flag.String("listen", ":9123", "listen addr")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			zap.NewProduction,
			func(logger *zap.Logger) (*convert.Converter, *http.Server) {
				return convert.New(logger),
					&http.Server{Addr: *listen}
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
