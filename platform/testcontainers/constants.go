package testcontainers

// Environment keys read by integration suites.
const (
	MongoImageNameKey = "MONGO_IMAGE_NAME"
	MongoDatabaseKey  = "MONGO_DATABASE"
	MongoUsernameKey  = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey  = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec

	NATSImageNameKey = "NATS_IMAGE_NAME"
)

const (
	DefaultMongoImage = "mongo:8.0"
	DefaultNATSImage  = "nats:2.11-alpine"
)
