// Package redis provides Redis client initialization, health checking, and a
// Redis-backed credential store.
//
// Connect wraps the go-redis client with URL validation, retry logic, and a
// connectivity ping so callers get a verified client or an error:
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Configuration maps to environment variables (REDIS_URL,
// REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL, REDIS_CONNECT_TIMEOUT) and
// supports redis:// and rediss:// URL schemes.
//
// CredentialStore implements credentials.Store on top of the client for
// deployments where several processes share one session:
//
//	store := redis.NewCredentialStore(client)
//	err := store.Save(ctx, session)
//
// Healthcheck returns a probe function for readiness endpoints.
package redis
