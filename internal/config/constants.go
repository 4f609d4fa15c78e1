package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envPollEnabled  = "POLL_ENABLED"
	envPollInterval = "POLL_INTERVAL"
	envDotEnvFile   = "DOTENV_FILE"

	envBdlAPIKey      = "BALL_API_KEY"
	envBdlBaseURL     = "BALLDONTLIE_BASE_URL"
	envBdlTimezone    = "BALLDONTLIE_TIMEZONE"
	envBdlMaxPages    = "BALLDONTLIE_MAX_PAGES"
	envBdlMinInterval = "BALLDONTLIE_MIN_INTERVAL"
	envBdlRetries     = "BALLDONTLIE_RETRY_ATTEMPTS"

	envSeatGeekClientID = "SEATGEEK_CLIENT_ID"
	envSeatGeekBaseURL  = "SEATGEEK_BASE_URL"

	envModelPath   = "MODEL_PATH"
	envGamesPath   = "GAMES_PATH"
	envResultsPath = "RESULTS_DB_PATH"

	envSnapshotSync      = "SNAPSHOT_SYNC_ENABLED"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotSchedule  = "SNAPSHOT_SCHEDULE"
	envSnapshotFuture    = "SNAPSHOT_FUTURE_DAYS"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	envAdminToken     = "ADMIN_TOKEN"
	envAdminTokenHash = "ADMIN_TOKEN_HASH"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultPort         = "8000"
	defaultProvider     = "balldontlie"
	defaultPollEnabled  = true
	defaultPollInterval = 10 * Duration(time.Minute)
	defaultDotEnvFile   = ".env"

	defaultBdlBaseURL     = "https://api.balldontlie.io/v1"
	defaultBdlTimezone    = "America/New_York"
	defaultBdlMaxPages    = 5
	defaultBdlMinInterval = 250 * Duration(time.Millisecond)
	defaultBdlRetries     = 3

	defaultSeatGeekBaseURL = "https://api.seatgeek.com/2"

	defaultModelPath   = "model/nba_model.json"
	defaultGamesPath   = "data/games.json"
	defaultResultsPath = "data/results.db"

	defaultSnapshotSync      = true
	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotSchedule  = "0 6 * * *"
	defaultSnapshotFuture    = 7
	defaultSnapshotRetention = 14

	defaultMetricsPort = "9090"
	defaultServiceName = "nba-predictor-service"
)
