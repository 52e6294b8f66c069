// @title         Job Portal API
// @version       1.0
// @description   Job board backend: postings, accounts and CV intake with skill matching.
// @BasePath      /
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token, "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/kaytee124/jobserverapi/docs"

	"github.com/kaytee124/jobserverapi/api/http"
	"github.com/kaytee124/jobserverapi/api/http/handlers"
	"github.com/kaytee124/jobserverapi/pkg/auth"
	"github.com/kaytee124/jobserverapi/pkg/config"
	"github.com/kaytee124/jobserverapi/pkg/cv"
	"github.com/kaytee124/jobserverapi/pkg/health"
	"github.com/kaytee124/jobserverapi/pkg/job"
	"github.com/kaytee124/jobserverapi/pkg/llm"
	"github.com/kaytee124/jobserverapi/pkg/llm/openai"
	"github.com/kaytee124/jobserverapi/pkg/repository"
	"github.com/kaytee124/jobserverapi/pkg/security/jwt"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("%s store: %v", cfg.StoreDriver, err)
	}

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(store.Users, jwtGen)
	jobUC := job.NewService(store.Jobs)

	var model llm.ChatModel
	if cfg.JudgeEnabled() {
		client := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.CompletionTimeout)
		client.AppTitle = cfg.OpenAIAppTitle
		client.Referer = cfg.OpenAIReferer
		model = client
	} else {
		log.Printf("OPENAI_API_KEY not set: CVs are stored without a match verdict")
	}
	cvUC := cv.NewService(jobUC, store.CVs, cv.FileExtractor{}, model, cv.Settings{
		ThresholdPercent: cfg.MatchThreshold,
		JudgeTimeout:     cfg.CompletionTimeout,
		MaxUploadBytes:   int64(cfg.MaxUploadBytes),
	})

	app := http.NewApp(http.AppConfig{
		BodyLimit:   cfg.MaxUploadBytes + 1<<20,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})
	http.Register(app,
		handlers.NewJobHandler(jobUC),
		handlers.NewAuthHandler(authUC),
		handlers.NewSubmissionHandler(cvUC, cfg.UploadDir),
		handlers.NewHealthHandler(health.NewService(store.Checkers...)),
		http.Middleware{Auth: jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)},
	)
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Printf("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("http shutdown: %v", err)
		}
	}()

	log.Printf("HTTP server listening on :%s (store=%s)", cfg.Port, cfg.StoreDriver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("server stopped: %v", err)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		log.Printf("close %s store: %v", cfg.StoreDriver, err)
	}
}
