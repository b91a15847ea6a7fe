package config

import (
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME" envDefault:"portal"`

	Server ServerConfig  `yaml:"server"`
	DB     DBConfig      `yaml:"db"`
	Redis  RedisConfig   `yaml:"redis"`
	Minio  MinioConfig   `yaml:"minio"`
	Email  EmailConfig   `yaml:"email"`
	Auth   AuthConfig    `yaml:"auth"`
	Jaeger *JaegerConfig `yaml:"jaeger"`
}

type ServerConfig struct {
	Mode   string `yaml:"mode"   env:"SERVER_MODE"   envDefault:"dev"`
	Port   int    `yaml:"port"   env:"SERVER_PORT"   envDefault:"8080"`
	Scheme string `yaml:"scheme" env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `yaml:"domain" env:"SERVER_DOMAIN" envDefault:"localhost"`
}

type DBConfig struct {
	Host     string `yaml:"host"     env:"POSTGRES_HOST"     envDefault:"localhost"`
	Port     int    `yaml:"port"     env:"POSTGRES_PORT"     envDefault:"5432"`
	User     string `yaml:"user"     env:"POSTGRES_USER"     envDefault:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Database string `yaml:"database" env:"POSTGRES_DB"       envDefault:"portal"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Pass string `yaml:"pass" env:"REDIS_PASS" envDefault:""`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"MINIO_ENDPOINT"   envDefault:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"MINIO_BUCKET"     envDefault:"portal-files"`
	UseSSL    bool   `yaml:"use_ssl"    env:"MINIO_USE_SSL"    envDefault:"false"`
}

type EmailConfig struct {
	Server string `yaml:"server" env:"EMAIL_SERVER"`
	Port   int    `yaml:"port"   env:"EMAIL_PORT" envDefault:"587"`
	User   string `yaml:"user"   env:"EMAIL_USER"`
	Pass   string `yaml:"pass"   env:"EMAIL_PASS"`
	Admin  string `yaml:"admin"  env:"EMAIL_ADMIN"`
}

type AuthConfig struct {
	JWT     JWTConfig     `yaml:"jwt"`
	Captcha CaptchaConfig `yaml:"captcha"`
}

type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
	Issuer string `yaml:"issuer" env:"JWT_ISSUER" envDefault:"portal"`
}

type CaptchaConfig struct {
	Enabled bool   `yaml:"enabled" env:"CAPTCHA_ENABLED" envDefault:"false"`
	Secret  string `yaml:"secret"  env:"CAPTCHA_SECRET"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `yaml:"type"  env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
		Param int    `yaml:"param" env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"             env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
		LocalAgentHostPort string `yaml:"local_agent_host_port" env:"JAEGER_AGENT"              envDefault:"localhost:6831"`
	} `yaml:"reporter"`
}

// MustLoad reads the YAML config at path, then applies environment
// overrides. Missing config file is not fatal: env vars alone are enough
// in containerized deployments.
func MustLoad(path string) Config {
	_ = godotenv.Load()

	conf := Config{}
	if bytes, err := os.ReadFile(path); err == nil {
		if err = yaml.Unmarshal(bytes, &conf); err != nil {
			zap.L().Fatal("failed to parse config file", zap.Error(err))
		}
	}

	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse env config", zap.Error(err))
	}

	if conf.Jaeger == nil {
		conf.Jaeger = &JaegerConfig{}
		if err := env.Parse(conf.Jaeger); err != nil {
			zap.L().Fatal("failed to parse jaeger config", zap.Error(err))
		}
	}

	return conf
}
