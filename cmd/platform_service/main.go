package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video_platform_service/cmd/platform_service/docs" // 引入生成的 Swagger 文档
	"video_platform_service/internal/platform/api/handlers"
	"video_platform_service/internal/platform/api/router"
	"video_platform_service/internal/platform/app"
	"video_platform_service/internal/platform/domain"
	"video_platform_service/internal/platform/repository"
	"video_platform_service/pkg/config"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/logger"
	"video_platform_service/pkg/response"
	testtool "video_platform_service/pkg/test_tool"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.Platform, config.EnvConfig.PlatformLogPath)
	defer logger.Log.Sync()

	cfg := config.LoadConfig[config.Platform](config.EnvConfig.Platform, config.EnvConfig.PlatformYAMLPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. 連線 MongoDB
	mongoURI := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.MongoDB.User, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    mongoURI,
		RetryCount:    cfg.MongoDB.RetryCount,
		RetryInterval: time.Duration(cfg.MongoDB.RetryInterval),
	}, cfg.MongoDB.Database)
	if err != nil {
		logger.Log.Fatal("Unable to connect to mongoDB after retries",
			zap.String("host", cfg.MongoDB.Host),
			zap.Error(err),
		)
	}
	defer mongoDB.Close(context.Background())

	if err := repository.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logger.Log.Fatal("ensure mongo indexes failed", zap.Error(err))
	}

	// 2. 連線 PostgreSQL (member 資料表)
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	pgPool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    dsn,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal("Unable to connect to postgreSQL database after retries",
			zap.String("host", cfg.PostgreSQL.Host),
			zap.Error(err),
		)
	}
	defer pgPool.Close()

	// 3. 初始化 MinIO 客戶端
	minioConn := database.MinIOConnection{
		Endpoint:      fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:          cfg.MinIO.User,
		Password:      cfg.MinIO.Password,
		BucketName:    cfg.MinIO.BucketName,
		UseSSL:        cfg.MinIO.UseSSL,
		PublicBaseURL: cfg.MinIO.PublicBaseURL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: time.Duration(cfg.MinIO.RetryInterval),
	}
	minioClient, err := database.NewMinIOConnection(minioConn)
	if err != nil {
		logger.Log.Fatal("Unable to connect to minio after retries",
			zap.String("endpoint", minioConn.Endpoint),
			zap.Error(err),
		)
	}

	// 4. RabbitMQ, media cleanup queue
	rabbitURL := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.IP, cfg.RabbitMQ.Port)
	rabbitConn, err := database.ConnectRabbitMQWithRetry(database.Connection{
		ConnectStr:    rabbitURL,
		RetryCount:    cfg.RabbitMQ.RetryCount,
		RetryInterval: time.Duration(cfg.RabbitMQ.RetryInterval),
	})
	if err != nil {
		log.Fatalf("RabbitMQ 連線失敗: %v", err)
	}
	defer rabbitConn.Close()

	rabbitChannel, err := database.GetRabbitMQChannelWithRetry(rabbitConn, cfg.RabbitMQ.RetryCount, time.Duration(cfg.RabbitMQ.RetryInterval))
	if err != nil {
		log.Fatalf("取得 RabbitMQ Channel 失敗: %v", err)
	}
	defer rabbitChannel.Close()
	rabbitRepo := database.NewRabbitRepository(rabbitChannel)

	cleanupQueue, err := repository.NewCleanupQueue(rabbitRepo)
	if err != nil {
		log.Fatalf("Queue Declare failed: %v", err)
	}

	// 5. Kafka activity events, 沒有 broker 時停用
	var kafkaWriter *kafka.Writer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaWriter, err = database.NewKafkaWriterWithRetry(database.KafkaConnection{
			Brokers:       cfg.Kafka.Brokers,
			Topic:         cfg.Kafka.Topic,
			RetryCount:    cfg.Kafka.RetryCount,
			RetryInterval: time.Duration(cfg.Kafka.RetryInterval),
		})
		if err != nil {
			log.Fatalf("Kafka Writer 建立失敗: %v", err)
		}
		defer kafkaWriter.Close()
	} else {
		logger.Log.Info("kafka brokers not configured, activity events disabled")
	}

	// 6. Redis sentinel, dashboard stats cache
	var statsCache repository.StatsCache
	masterName, sentinelAddrs := config.GetRedisSetting()
	if len(sentinelAddrs) > 0 {
		redisClient, err := database.NewRedisClient(masterName, sentinelAddrs, cfg.Redis.RedisDB)
		if err != nil {
			logger.Log.Fatal("Unable to connect to redis", zap.Strings("sentinels", sentinelAddrs), zap.Error(err))
		}
		defer redisClient.Close()
		statsCache = repository.NewStatsCache(database.NewRedisRepository[domain.ChannelStats](redisClient), cfg.StatsCacheTTL)
	} else {
		logger.Log.Info("redis sentinel not configured, stats cache disabled")
		statsCache = repository.NewStatsCache(nil, 0)
	}

	users := repository.NewUserDirectory(pgPool)
	media := repository.NewMediaGateway(minioClient, minioConn)
	events := repository.NewEventPublisher(kafkaWriter)

	// 背景刪除補償失敗的遠端檔案
	consumer := app.NewCleanupConsumer(rabbitRepo, media, 5*time.Second)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Log.Error("cleanup consumer exited", zap.Error(err))
		}
	}()

	testtool.StartPprof()

	// 7. 建立 Fiber 應用
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 512
	}
	r := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
		BodyLimit:    bodyLimit * 1024 * 1024,
	})
	r.Use(recover.New())

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.PlatformLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	tmpDir := cfg.TmpDir
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	router.RegisterRoutes(r, newHandlers(platformDeps{
		db:      mongoDB.Database,
		users:   users,
		media:   media,
		cleanup: cleanupQueue,
		events:  events,
		stats:   statsCache,
		tmpDir:  tmpDir,
	}))

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Log.Info("shutting down platform service")
		cancel()
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info(fmt.Sprintf("platform service listening on : %s", cfg.Port))
	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

// platformDeps 已連線的外部資源
type platformDeps struct {
	db      *mongo.Database
	users   repository.UserDirectory
	media   repository.MediaGateway
	cleanup repository.CleanupQueue
	events  repository.EventPublisher
	stats   repository.StatsCache
	tmpDir  string
}

// newHandlers 建立 stores -> usecases -> handlers
func newHandlers(d platformDeps) router.Handlers {
	videos := repository.NewStore[domain.Video](d.db, domain.VideoCollection)
	comments := repository.NewStore[domain.Comment](d.db, domain.CommentCollection)
	tweets := repository.NewStore[domain.Tweet](d.db, domain.TweetCollection)
	playlists := repository.NewStore[domain.Playlist](d.db, domain.PlaylistCollection)
	likes := repository.NewRelationStore[domain.Like](d.db, domain.LikeCollection)
	subscriptions := repository.NewRelationStore[domain.Subscription](d.db, domain.SubscriptionCollection)

	return router.Handlers{
		Video:        handlers.NewVideoHandler(app.NewVideoUseCase(videos, d.media, d.cleanup, d.events), d.tmpDir),
		Comment:      handlers.NewCommentHandler(app.NewCommentUseCase(comments, videos)),
		Tweet:        handlers.NewTweetHandler(app.NewTweetUseCase(tweets, d.users)),
		Playlist:     handlers.NewPlaylistHandler(app.NewPlaylistUseCase(playlists, videos, d.users)),
		Like:         handlers.NewLikeHandler(app.NewLikeUseCase(likes, videos, comments, tweets, d.events)),
		Subscription: handlers.NewSubscriptionHandler(app.NewSubscriptionUseCase(subscriptions, d.users, d.events)),
		Dashboard:    handlers.NewDashboardHandler(app.NewDashboardUseCase(videos, comments, tweets, likes, subscriptions, d.users, d.stats)),
	}
}
