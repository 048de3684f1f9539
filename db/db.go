package db

// Type names a supported database backend, selected by DB_TYPE.
type Type string

const (
	Postgres Type = "postgres"
	Mongo    Type = "mongo"
)

// DB is the lifecycle every backend connector implements.
type DB interface {
	Connect() error
	Disconnect() error
}
