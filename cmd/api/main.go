package main

import (
	"context"
	"os"
	"strconv"

	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/sqlite"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/sqlite/repository"
	handler2 "github.com/Kaiser28/comptable-dashboard-sub001/internal/http/handler"
	authmw "github.com/Kaiser28/comptable-dashboard-sub001/internal/http/middleware"
	cognitoclient "github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/aws/cognito"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/aws/storage"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/aws/websocket"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/infrastructure/pappers"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/service"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/service/jobs"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/uid"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/comptable/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	uid.Init(machineID())

	if err := utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_USER_POOL_ID")); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient(os.Getenv("AWS_COGNITO_APP_CLIENT_ID"))
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	gateway, err := websocket.NewAWSGatewayClient(ctx, os.Getenv("AWS_WS_API_ENDPOINT"), os.Getenv("AWS_WS_REGION"))
	if err != nil {
		panic(err)
	}

	pappersClient := pappers.NewClient()

	// Gettings repos
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	associeRepo := repository.NewAssocieRepository(db)
	acteRepo := repository.NewActeRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	entrepriseRepo := repository.NewEntrepriseRepository(db)
	connRepo := repository.NewConnectionRepository(db)

	// Policies
	userPolicy := policy.NewUserPolicy()
	clientPolicy := policy.NewClientPolicy()

	// Getting services
	wsService := service.NewWebSocketService(connRepo, gateway)
	userService := service.NewUserService(userRepo, validate, cogClient, userPolicy, wsService)
	clientService := service.NewClientService(clientRepo, associeRepo, wsService, clientPolicy, validate)
	acteService := service.NewActeService(acteRepo, clientRepo, clientPolicy, validate)
	docService := service.NewDocumentService(docRepo, acteRepo, clientRepo, wsService, s3Client, clientPolicy)
	miscService := service.NewMiscService(pappersClient, entrepriseRepo)

	// Gettings handler
	userRoutes := handler2.NewUserDefault(userService)
	clientRoutes := handler2.NewClientDefault(clientService)
	acteRoutes := handler2.NewActeDefault(acteService)
	docRoutes := handler2.NewDocumentDefault(docService)
	utilRoutes := handler2.NewUtilRoute(miscService)
	wsRoutes := handler2.NewWSDefault(wsService)

	// Background jobs
	go jobs.NewConnectionCleaner(wsService).Start(ctx)
	go jobs.NewEntrepriseCacheCleaner(entrepriseRepo).Start(ctx)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))

	// Public user routes (signup flow)
	e.POST("/api/users/check-email", userRoutes.CheckEmail)
	e.POST("/api/users", userRoutes.CreateUser)
	e.POST("/api/users/login", userRoutes.CreateLogin)
	e.POST("/api/users/confirms", userRoutes.ConfirmSignup)
	e.POST("/api/users/confirms/resend", userRoutes.ResendConfirmation)

	// WebSocket lifecycle, called by the API Gateway integration
	e.POST("/ws/connect", wsRoutes.HandleConnect)
	e.POST("/ws/disconnect", wsRoutes.HandleDisconnect)
	e.POST("/ws/message", wsRoutes.HandleMessage)

	api := e.Group("/api", authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		UserRepo: userRepo,
	}))

	// Users
	api.GET("/users", userRoutes.GetUsers)
	api.GET("/users/:id", userRoutes.GetUser)
	api.PATCH("/users/:id", userRoutes.UpdateUser)
	api.DELETE("/users/:id", userRoutes.DeleteUser)
	api.POST("/users/logout", userRoutes.Logout)

	// Clients (dossiers)
	api.GET("/clients", clientRoutes.GetClients)
	api.GET("/clients/:id", clientRoutes.GetClient)
	api.POST("/clients", clientRoutes.CreateClient)
	api.PATCH("/clients/:id", clientRoutes.UpdateClient)
	api.DELETE("/clients/:id", clientRoutes.DeleteClient)

	// Associés
	api.GET("/clients/:id/associes", clientRoutes.GetAssocies)
	api.POST("/clients/:id/associes", clientRoutes.AddAssocie)
	api.PATCH("/clients/:id/associes/:associeId", clientRoutes.UpdateAssocie)
	api.DELETE("/clients/:id/associes/:associeId", clientRoutes.DeleteAssocie)

	// Actes juridiques
	api.GET("/clients/:id/actes", acteRoutes.GetActes)
	api.POST("/clients/:id/actes", acteRoutes.CreateActe)
	api.GET("/actes/:id", acteRoutes.GetActe)
	api.PATCH("/actes/:id", acteRoutes.UpdateActe)
	api.DELETE("/actes/:id", acteRoutes.DeleteActe)

	// Document generation
	api.POST("/actes/:id/generate", docRoutes.GenerateDocument)
	api.GET("/clients/:id/documents", docRoutes.GetDocuments)
	api.DELETE("/documents/:id", docRoutes.DeleteDocument)

	// SIRET lookup
	api.GET("/entreprises/:siret", utilRoutes.GetEntreprise)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("frtime", validators.FRTime)
	_ = validate.RegisterValidation("siret", validators.Siret)
}

func machineID() int64 {
	raw := os.Getenv("SNOWFLAKE_MACHINE_ID")
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid SNOWFLAKE_MACHINE_ID: %v", err)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("eu-west-3"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
