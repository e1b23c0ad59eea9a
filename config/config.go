package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every setting the storefront reads from the environment.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	// Persisted storage
	StorageBackend    string `envconfig:"STORAGE_BACKEND" default:"memory"`
	MongoURI          string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017/"`
	MongoDatabase     string `envconfig:"MONGO_DATABASE" default:"storefront"`
	MongoCollection   string `envconfig:"MONGO_COLLECTION" default:"local_storage"`
	RedisURL          string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	RedisWriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	RedisDialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	RedisTTL          string `envconfig:"REDIS_TTL" default:"0s"`
	SQLitePath        string `envconfig:"SQLITE_PATH" default:"file:storefront.db?cache=shared"`

	// Sessions
	JWTSecret          string `envconfig:"JWT_SECRET" default:"storefront-dev-secret"`
	SessionTTL         string `envconfig:"SESSION_TTL" default:"720h"`
	SessionIdleTimeout string `envconfig:"SESSION_IDLE_TIMEOUT" default:"2h"`

	// Payment proof uploads
	UploadSink     string `envconfig:"UPLOAD_SINK" default:"local"`
	UploadDir      string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
	UploadEndpoint string `envconfig:"UPLOAD_ENDPOINT"`
	AWSRegion      string `envconfig:"AWS_REGION" default:"ap-southeast-1"`
	AWSBucketName  string `envconfig:"AWS_BUCKET_NAME"`

	// Integrations
	SendGridAPIKey string   `envconfig:"SENDGRID_API_KEY"`
	MailFromName   string   `envconfig:"MAIL_FROM_NAME" default:"Yelis Marketplace"`
	MailFromEmail  string   `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@yelis.id"`
	KafkaBrokers   []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic     string   `envconfig:"KAFKA_TOPIC" default:"order-events"`

	// Store behaviour
	AuthDelay              string `envconfig:"AUTH_DELAY" default:"1s"`
	AuthHashPasswords      bool   `envconfig:"AUTH_HASH_PASSWORDS" default:"false"`
	OrderStrictTransitions bool   `envconfig:"ORDER_STRICT_TRANSITIONS" default:"false"`
	PaymentWindow          string `envconfig:"PAYMENT_WINDOW" default:"24h"`
}

var (
	Current Config

	Env            Environment
	Port           string
	StorageBackend string
	MongoURI       string
	DBName         string
	JWTSecret      string
	AWSRegion      string
	AWSBucketName  string
)

// LoadConfig loads environment variables from the .env file (if any) and the process
// environment into Current and the package level shortcuts.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	if err := envconfig.Process("", &Current); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	Env = ParseEnvironment(Current.AppEnv)
	Port = Current.Port
	StorageBackend = Current.StorageBackend
	MongoURI = Current.MongoURI
	DBName = Current.MongoDatabase
	JWTSecret = Current.JWTSecret
	AWSRegion = Current.AWSRegion
	AWSBucketName = Current.AWSBucketName
}

// Duration parses a duration setting, returning fallback when v is empty or malformed.
func Duration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}
