package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/priyansh911911/Furniture-B/internal/cfg"
	v1Http "github.com/priyansh911911/Furniture-B/internal/delivery/v1/http"
	minioInfra "github.com/priyansh911911/Furniture-B/internal/infrastructure/minio"
	s3Repo "github.com/priyansh911911/Furniture-B/internal/repository/minio"
	"github.com/priyansh911911/Furniture-B/internal/repository/pgdb"
	pgdbConv "github.com/priyansh911911/Furniture-B/internal/repository/pgdb/converter/generated"
	"github.com/priyansh911911/Furniture-B/internal/repository/redis"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/clients"
	"github.com/priyansh911911/Furniture-B/pkg/closer"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"github.com/priyansh911911/Furniture-B/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

// App держит собранное приложение и его жизненный цикл.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv       *v1Http.Server
	cleanupCancel context.CancelFunc
}

// NewApp собирает зависимости: базу с миграциями, MinIO, Redis, репозитории,
// usecase-слой и HTTP-сервер. Порядок регистрации в closer задаёт порядок
// закрытия при остановке (LIFO).
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("database connection closed")
		return nil
	})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	inqConv := pgdbConv.NewInquiryConverterImpl()
	conConv := pgdbConv.NewContactConverterImpl()
	admConv := pgdbConv.NewAdminConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	inquiryRepo := pgdb.NewInquiryRepo(db.Pool, inqConv)
	contactRepo := pgdb.NewContactRepo(db.Pool, conConv)
	adminRepo := pgdb.NewAdminRepo(db.Pool, admConv)
	sessionRepo := redis.NewSessionRepo(redisClient)
	txManager := pgdb.NewTxManager(db.Pool)

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	// Контекст фоновых очисток живёт дольше shutdown-контекста,
	// отменяется в самом конце Run.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, cleanupCtx)
	cl.Add(imagesInfra.WaitForCleanup)

	productUC := usecase.NewProductUC(productRepo, categoryRepo, txManager, imagesInfra, log)
	categoryUC := usecase.NewCategoryUC(categoryRepo, productRepo, txManager, imagesInfra, log)
	inquiryUC := usecase.NewInquiryUC(inquiryRepo, productRepo, log)
	contactUC := usecase.NewContactUC(contactRepo, log)
	authUC := usecase.NewAuthUC(adminRepo, sessionRepo, cfg.Auth, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg, log)
	router.Init(productUC, categoryUC, inquiryUC, contactUC, authUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		if err := httpSrv.Stop(ctx); err != nil {
			return err
		}
		log.Infof("HTTP server stopped")
		return nil
	})

	return &App{
		cfg:           cfg,
		logger:        log,
		closer:        cl,
		httpSrv:       httpSrv,
		cleanupCancel: cleanupCancel,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}
	a.cleanupCancel()

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
