package configs

import "github.com/spf13/viper"

type Conf struct {
	ServiceName   string `mapstructure:"SERVICE_NAME"`
	Env           string `mapstructure:"APP_ENV"`
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	WebServerPort string `mapstructure:"WEB_SERVER_PORT"`
	MetricsPort   string `mapstructure:"METRICS_PORT"`
	AMQPort       string `mapstructure:"AMQ_PORT"`
	OtelCollector string `mapstructure:"OTEL_COLLECTOR_ADDR"`
}

func (c *Conf) IsProd() bool {
	return c.Env == "production"
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
