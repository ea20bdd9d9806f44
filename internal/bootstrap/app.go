package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"paperqa-backend/internal/arxiv"
	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/questions"
	"paperqa-backend/internal/services/health"
	"paperqa-backend/internal/shared/config"
	"paperqa-backend/internal/shared/latency"
	"paperqa-backend/internal/shared/random"
	"paperqa-backend/internal/shared/server"
	"paperqa-backend/internal/shared/storage/object"
	discardstore "paperqa-backend/internal/shared/storage/object/discard"
	localstore "paperqa-backend/internal/shared/storage/object/local"
	s3store "paperqa-backend/internal/shared/storage/object/s3"
	"paperqa-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Store            object.ObjectStore
	DocumentsRepo    documents.Repo
	DocumentsService *documents.Service
	ArxivService     *arxiv.Service
	QuestionsService *questions.Service
	DocumentsHandler *documents.Handler
	ArxivHandler     *arxiv.Handler
	QuestionsHandler *questions.Handler
	HealthService    *health.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "none"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config: app.Config,
		Health: app.HealthService,
		Handlers: []server.RouteRegistrar{
			app.DocumentsHandler,
			app.QuestionsHandler,
			app.ArxivHandler,
		},
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":           cfg.Env,
		"object_store":  cfg.ObjectStoreType,
		"latency_scale": cfg.LatencyScale,
	})
	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "local":
		return localstore.New(cfg.LocalStoreDir), nil
	default:
		return discardstore.New(), nil
	}
}

func buildServices(app *App) {
	src := random.Global()
	sim := latency.NewSimulator(src)
	profile := latency.DefaultProfile().Scaled(app.Config.LatencyScale)

	repo := documents.NewMemoryRepo()
	docSvc := &documents.Service{
		Store:   app.Store,
		Repo:    repo,
		Latency: sim,
		Delay:   profile.Upload,
		Rand:    src,
	}
	arxivSvc := &arxiv.Service{
		Docs:        docSvc,
		Latency:     sim,
		SearchDelay: profile.Search,
		ImportDelay: profile.Import,
		Rand:        src,
	}
	questionSvc := &questions.Service{
		Docs:       docSvc,
		Latency:    sim,
		AskDelay:   profile.Ask,
		AgentDelay: profile.Agent,
	}

	app.DocumentsRepo = repo
	app.DocumentsService = docSvc
	app.ArxivService = arxivSvc
	app.QuestionsService = questionSvc
	app.DocumentsHandler = documents.NewHandler(docSvc, app.Config.MaxUploadBytes)
	app.ArxivHandler = arxiv.NewHandler(arxivSvc)
	app.QuestionsHandler = questions.NewHandler(questionSvc)
	app.HealthService = health.NewService(docSvc, app.Config.ObjectStoreType)
}
