// GET    /data            list records
// POST   /create          create a record (any JSON object)
// GET    /detail?id=      get one record
// PUT    /update?id=      partial update
// DELETE /delete?id=      delete a record
// GET    /search?search=  case-insensitive title substring search
// PUT    /like?id=        increment the like counter
// POST   /join            user registration

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	healthAPI "linkboard/internal/app/server/api/http/health"
	"linkboard/internal/app/server/api/http/middleware/logger"
	recordAPI "linkboard/internal/app/server/api/http/record"
	userAPI "linkboard/internal/app/server/api/http/user"
	"linkboard/internal/config"
	"linkboard/internal/domain/record"
	"linkboard/internal/domain/user"
	"linkboard/internal/infrastructure/storage/mongodb"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
	User   *userAPI.Handler
}

// New creates a *chi.Mux with every operation registered through huma.
func New(cfg *config.Config, storage *mongodb.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORS.Origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	humaConfig := huma.DefaultConfig("Linkboard API", "1.0.0")
	API := humachi.New(mux, humaConfig)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)
	h.User.SetupRoutes(API)

	mux.Get("/", welcome)

	return mux
}

func handlers(storage *mongodb.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	mws := huma.Middlewares{loggerMW.Middleware()}

	recordRepo := mongodb.NewRecordRepository(storage, log)
	recordService := record.NewService(recordRepo, log)
	recordHandler := recordAPI.NewHandler(recordService, log, mws)

	userRepo := mongodb.NewUserRepository(storage, log)
	userService := user.NewService(userRepo, user.NewSchemaValidator(), log)
	userHandler := userAPI.NewHandler(userService, log, mws)

	healthHandler := healthAPI.NewHandler(storage, log, mws)

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
		User:   userHandler,
	}
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<h1>Welcome to the Linkboard API</h1>"))
}
