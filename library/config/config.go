package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/scheduler"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
	// ImportBodyLimit caps import uploads; POST /imports extends the
	// timeouts above to IMPORT_TIMEOUT on its own connection.
	ImportBodyLimit string `yaml:"importBodyLimit" envconfig:"IMPORT_BODY_LIMIT" default:"20M"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Kafka          kafka.Config           `yaml:"kafka"`
	Log            logger.Log             `yaml:"log"`
	Service        service.Config         `yaml:"service"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Scheduler      scheduler.Config       `yaml:"scheduler"`
	// JWTKey verifies bearer tokens.
	JWTKey string `yaml:"-" json:"-" envconfig:"JWT_KEY"`
	// GatewaySecret enables X-User-* identity headers from a trusted gateway.
	GatewaySecret string `yaml:"-" json:"-" envconfig:"GATEWAY_SECRET"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied on top.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
