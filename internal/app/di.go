package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/partsyard/internal/cache"
	"github.com/you-humble/partsyard/internal/client/blob"
	"github.com/you-humble/partsyard/internal/client/identity"
	"github.com/you-humble/partsyard/internal/config"
	repository "github.com/you-humble/partsyard/internal/repository/part"
	adminsvc "github.com/you-humble/partsyard/internal/service/admin"
	catalogsvc "github.com/you-humble/partsyard/internal/service/catalog"
	storefrontsvc "github.com/you-humble/partsyard/internal/service/storefront"
	adminv1 "github.com/you-humble/partsyard/internal/transport/http/admin/v1"
	authv1 "github.com/you-humble/partsyard/internal/transport/http/auth/v1"
	catalogv1 "github.com/you-humble/partsyard/internal/transport/http/catalog/v1"
	"github.com/you-humble/partsyard/platform/closer"
	"github.com/you-humble/partsyard/platform/logger"
)

type PartRepository interface {
	catalogsvc.PartRepository
	adminsvc.PartRepository
	repository.BatchCreator
}

type CatalogService interface {
	adminv1.CatalogService
	storefrontsvc.Catalog
}

type StorefrontService interface {
	catalogv1.StorefrontService
	adminsvc.CacheInvalidator
}

type BlobStore interface {
	adminsvc.BlobStore
	catalogv1.PhotoReader
}

type IdentityProvider interface {
	authv1.SessionMinter
	adminv1.SessionVerifier
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection
	repository PartRepository

	cache storefrontsvc.Cache

	nats  *nats.Conn
	blobs BlobStore

	identity IdentityProvider

	catalog    CatalogService
	storefront StorefrontService
	admin      adminv1.AdminService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.PartsCollection())
	}

	return d.collection
}

func (d *di) PartsRepository(ctx context.Context) PartRepository {
	if d.repository == nil {
		d.repository = repository.NewPartRepository(d.PartsCollection(ctx))
	}

	return d.repository
}

func (d *di) Cache(ctx context.Context) storefrontsvc.Cache {
	if d.cache == nil {
		cfg := config.C().Cache

		switch cfg.Backend() {
		case cache.BackendMemory:
			d.cache = cache.NewMemory(cfg.Size(), cfg.TTL())
		case cache.BackendRedis:
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr(),
				Password: cfg.RedisPassword(),
				DB:       cfg.RedisDB(),
			})
			closer.AddNamed("Redis Client",
				func(ctx context.Context) error {
					return client.Close()
				})

			if err := client.Ping(ctx).Err(); err != nil {
				panic(fmt.Sprintf("failed to ping redis: %v\n", err))
			}

			d.cache = cache.NewRedis(client, cfg.Prefix())
		default:
			panic(fmt.Sprintf("%v: %q", cache.ErrUnknownBackend, cfg.Backend()))
		}

		logger.Info(ctx, "storefront cache ready", logger.String("backend", cfg.Backend()))
	}

	return d.cache
}

func (d *di) NATS(_ context.Context) *nats.Conn {
	if d.nats == nil {
		conn, err := nats.Connect(config.C().Blob.NATSURL(), nats.Name("partsyard"))
		if err != nil {
			panic(fmt.Sprintf("failed to connect to nats: %v\n", err))
		}
		closer.AddNamed("NATS Connection",
			func(ctx context.Context) error {
				return conn.Drain()
			})

		d.nats = conn
	}

	return d.nats
}

func (d *di) BlobStore(ctx context.Context) BlobStore {
	if d.blobs == nil {
		cfg := config.C().Blob

		js, err := jetstream.New(d.NATS(ctx))
		if err != nil {
			panic(fmt.Sprintf("failed to create jetstream context: %v\n", err))
		}

		store, err := blob.Open(ctx, js, cfg.Bucket(), cfg.PublicBaseURL())
		if err != nil {
			panic(fmt.Sprintf("failed to open photo bucket: %v\n", err))
		}

		d.blobs = store
	}

	return d.blobs
}

func (d *di) Identity(_ context.Context) IdentityProvider {
	if d.identity == nil {
		cfg := config.C().Auth

		d.identity = identity.NewProvider(identity.Config{
			Issuer:        cfg.Issuer(),
			IDTokenSecret: cfg.IDTokenSecret(),
			SessionSecret: cfg.SessionSecret(),
			SessionTTL:    cfg.SessionTTL(),
		})
	}

	return d.identity
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.catalog == nil {
		d.catalog = catalogsvc.NewCatalogService(
			d.PartsRepository(ctx),
			config.C().Server.DBReadTimeout(),
			nil,
		)
	}

	return d.catalog
}

func (d *di) StorefrontService(ctx context.Context) StorefrontService {
	if d.storefront == nil {
		d.storefront = storefrontsvc.NewStorefrontService(
			d.CatalogService(ctx),
			d.Cache(ctx),
			config.C().Cache.TTL(),
		)
	}

	return d.storefront
}

func (d *di) AdminService(ctx context.Context) adminv1.AdminService {
	if d.admin == nil {
		cfg := config.C()

		d.admin = adminsvc.NewAdminService(
			d.PartsRepository(ctx),
			d.BlobStore(ctx),
			d.StorefrontService(ctx),
			adminsvc.Config{
				Staff:           cfg.Business.Staff(),
				BulkConcurrency: cfg.Business.BulkConcurrency(),
				MaxPhotoBytes:   cfg.Blob.MaxPhotoBytes(),
				ReadDBTimeout:   cfg.Server.DBReadTimeout(),
				WriteDBTimeout:  cfg.Server.DBWriteTimeout(),
			},
		)
	}

	return d.admin
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
