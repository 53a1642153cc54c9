package grpc

import (
	"net"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// App exposes the internal gRPC surface; for now that is the stock health
// service the platform's service discovery probes.
type App struct {
	srv *grpc.Server
}

func NewGrpc() *App {
	server := grpc.NewServer()

	healthpb.RegisterHealthServer(server, health.NewServer())
	reflection.Register(server)

	return &App{server}
}

func (v *App) Listen() {
	listener, err := net.Listen("tcp", viper.GetString("grpc_bind"))
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the gRPC listener.")
	}

	if err := v.srv.Serve(listener); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when serving gRPC.")
	}
}
