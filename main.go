package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-pathfinder/api/maze"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/cache"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/pbencoder"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	accountRepo    i.AccountRepo
	mazeRepo       i.MazeRepo
	solutionCache  i.SolutionCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	solverService  i.MazeSolver
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

// newLogger creates a component logger at the configured level.
func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err == nil {
		err = l.SetLevel(config.Envs.LogLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	accounts := repo.NewAccountRepo(client, config.Envs.DBName, "accounts")
	if err := accounts.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating account indexes: %v", err))
		os.Exit(1)
	}
	accountRepo = accounts
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initSolutionCache(client *redis.Client) {
	solutionCache = cache.NewRedisSolutionCache(client, cache.Options{
		LockTTL: time.Duration(config.Envs.LockTTL) * time.Second,
	})
	appLogger.Info("Solution cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	authService = service.NewAuth(accountRepo, jwtTokenizer, newLogger("AUTH", config.ColorMagenta), 0)
	appLogger.Info("Auth service initialized")
}

func initSolverService() {
	var err error
	solverService, err = service.NewSolver(mazeRepo, solutionCache, &pbencoder.Protobuf{}, newLogger("SOLVER", config.ColorCyan), &service.Options{
		MaxDimension: config.Envs.MaxMazeDimension,
		SolutionTTL:  time.Duration(config.Envs.SolutionTTL) * time.Second,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating solver service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Solver service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService, appLogger)
	mazeController = mazeapi.NewMazeController(solverService, newLogger("HTTP", config.ColorBlue))
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	config.Init()
	appLogger = newLogger("APP", config.ColorGreen)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx, mongoClient)
	initSolutionCache(redisClient)
	initJWTTokenizer()
	initAuthService()
	initSolverService()
	initControllers()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
