package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Credentials. The OpenAI key doubles as the credential the dispatcher
	// requires before invoking any inference script.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`

	// Models.
	VLMModel   string `env:"VLM_MODEL" envDefault:"gpt-4o"`
	JudgeModel string `env:"JUDGE_MODEL" envDefault:"gemini-1.5-pro-latest"`

	// Directory layout, relative to the repository root.
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	OutputDir     string `env:"OUTPUT_DIR" envDefault:"results/inference_outputs"`
	EvalOutputDir string `env:"EVAL_OUTPUT_DIR" envDefault:"results/evaluation_scores"`
	CheckpointDir string `env:"CHECKPOINT_DIR" envDefault:"results/checkpoints"`
	ScriptsDir    string `env:"SCRIPTS_DIR" envDefault:"scripts"`

	// Run history database.
	RunDBPath string `env:"RUN_DB_PATH" envDefault:"results/runs.db"`

	// Dataset source.
	DatasetRepo string `env:"DATASET_REPO" envDefault:"atamiles/VLURes"`

	// Optional results archive. When ResultsBucket is empty no archival
	// happens and the remaining archive settings are ignored. When
	// ResultsArchiveDir is set the archive lives under that local directory
	// instead of S3.
	ResultsBucket     string `env:"RESULTS_BUCKET"`
	ResultsArchiveDir string `env:"RESULTS_ARCHIVE_DIR"`
	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`

	// Generation and retry knobs.
	MaxTokens       int           `env:"MAX_TOKENS" envDefault:"1024"`
	Temperature     float64       `env:"TEMPERATURE" envDefault:"0"`
	BatchSize       int           `env:"BATCH_SIZE" envDefault:"8"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"3"`
	RetryDelay      time.Duration `env:"RETRY_DELAY" envDefault:"5s"`
	DownloadWorkers int           `env:"DOWNLOAD_WORKERS" envDefault:"16"`
	JudgeWorkers    int           `env:"JUDGE_WORKERS" envDefault:"10"`
}

func Load() (*Config, error) {
	// Load .env if present, useful for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
