package app

import (
	"context"
	"os"
	"time"

	"github.com/KapilArunesshSS/brighttechrms/internal/shared/connection"
	"github.com/KapilArunesshSS/brighttechrms/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on
// the router. Blob storage goes to S3 when AWS credentials are present
// in the environment, otherwise to the local media directory.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var blobs storage.BlobStore
	if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		s3Store, err := storage.NewS3Store(ctx, os.Getenv("AWS_STORAGE_BUCKET_NAME"), os.Getenv("AWS_S3_REGION_NAME"))
		if err != nil {
			return err
		}
		blobs = s3Store
		logger.Info("using s3 blob storage", zap.String("bucket", os.Getenv("AWS_STORAGE_BUCKET_NAME")))
	} else {
		root := os.Getenv("MEDIA_ROOT")
		if root == "" {
			root = "media"
		}
		local := storage.NewLocalStore(root, "/media")
		blobs = local
		router.Static("/media", local.Root())
		logger.Info("using local blob storage", zap.String("root", root))
	}

	return registerModules(ctx, router, db, gormDB, rdb, blobs)
}
