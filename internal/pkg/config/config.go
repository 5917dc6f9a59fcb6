package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file plus the
// process environment. Environment variables win over file values;
// keys are dot-separated sections mapped to SECTION_KEY env names.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sentinela")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "sentinela")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "sentinela")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.lookupd_address", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "sentinela")

	// Live entries older than the TTL stop rendering markers even if
	// the retire-on-next-sample step never ran for them.
	v.SetDefault("tracking.live_ttl_minutes", 10)
	v.SetDefault("tracking.geohash_precision", 7)
	v.SetDefault("tracking.janitor_seconds", 60)
	v.SetDefault("tracking.refresh_seconds", 6)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
