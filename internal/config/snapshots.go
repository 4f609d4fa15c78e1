package config

// SnapshotConfig controls the scheduled refresh of the static fallback games file.
type SnapshotConfig struct {
	Enabled       bool
	Dir           string // dated archive root
	Schedule      string // cron spec, evaluated in the balldontlie timezone
	FutureDays    int
	RetentionDays int
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotSync, defaultSnapshotSync),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Schedule:      envOrDefault(envSnapshotSchedule, defaultSnapshotSchedule),
		FutureDays:    intEnvOrDefault(envSnapshotFuture, defaultSnapshotFuture),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}
