// Package server wraps http.Server with graceful shutdown, production
// timeouts and errgroup-friendly lifecycle management.
//
// # Basic Usage
//
//	srv := server.New(":8080",
//		server.WithLogger(log),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run starts the server and shuts it down gracefully when ctx is cancelled.
//
// # Configuration
//
// Config carries env tags for core/config:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// Options passed to NewFromConfig override config values.
//
// # Ephemeral Ports
//
// Binding ":0" or "127.0.0.1:0" picks a free port; Addr reports the bound
// address once the server is running.
package server
