package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "mingle/internal/adapters/database"
	"mingle/internal/adapters/httpapi"
	redisadapter "mingle/internal/adapters/redis"
	"mingle/internal/config"
	feedapp "mingle/internal/core/feed/service"
	postapp "mingle/internal/core/post/service"
	"mingle/internal/core/user"
	userapp "mingle/internal/core/user/service"
	"mingle/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	// MySQL holds user accounts; posts live in MongoDB.
	config.InitDB()
	if err := config.DB.AutoMigrate(&user.User{}); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitMongo()
	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryMongo(config.MongoDB)
	resolver := dbadapter.NewIdentityResolverDatabase()
	cachedResolver := redisadapter.NewIdentityCacheRedis(config.RedisClient, resolver)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := postRepo.EnsureIndexes(ctx); err != nil {
			config.Logger.Warn("⚠️ Warning: could not create post indexes", zap.Error(err))
		}
		cancel()
	}

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	postSvc := postapp.NewPostService(postRepo)
	feedSvc := feedapp.NewFeedService(postRepo, cachedResolver)
	r := httpapi.SetupRoutes(userSvc, postSvc, feedSvc)

	batchSize, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}

	warmer := workers.NewIdentityWarmer(postRepo, cachedResolver, time.Minute, batchSize, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go warmer.Run(ctx)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis, MongoDB and MySQL connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := config.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Error closing MongoDB connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
