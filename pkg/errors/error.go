package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"

	// OrderRejectedError represents an order rejected before matching.
	OrderRejectedError ErrorCode = "order_rejected_error"
	// OrderPersistError represents a failure persisting an order's state.
	OrderPersistError ErrorCode = "order_persist_error"
	// TradePersistError represents a failure persisting an executed trade.
	TradePersistError ErrorCode = "trade_persist_error"
	// BookInvariantError represents a broken order book invariant.
	BookInvariantError ErrorCode = "book_invariant_error"

	// SnapshotStoreError represents an error storing a book snapshot.
	SnapshotStoreError ErrorCode = "snapshot_store_error"
	// SnapshotLoadError represents an error loading a book snapshot.
	SnapshotLoadError ErrorCode = "snapshot_load_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"

	// PostgresConnectionError represents an error when connecting to Postgres.
	PostgresConnectionError ErrorCode = "postgres_connection_error"
)
