package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	YouTube    YouTubeConfig    `yaml:"youtube"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Paths      PathsConfig      `yaml:"paths"`
	Assets     AssetsConfig     `yaml:"assets"`
	Moderation ModerationConfig `yaml:"moderation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

type YouTubeConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
	TokenFile    string `yaml:"token_file"`
}

type FFmpegConfig struct {
	Encoder      string `yaml:"encoder"`
	Preset       string `yaml:"preset"`
	VideoBitrate string `yaml:"video_bitrate"`
	AudioCodec   string `yaml:"audio_codec"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
	State  string `yaml:"state"`
}

type AssetsConfig struct {
	Sounds string `yaml:"sounds"`
	Images string `yaml:"images"`
}

type ModerationConfig struct {
	KeywordsFile string `yaml:"keywords_file"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type PipelineConfig struct {
	ShortMaxSeconds int `yaml:"short_max_seconds"`
	MaxConcurrent   int `yaml:"max_concurrent"`
	FontSize        int `yaml:"font_size"`
}

// Load reads and validates configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.State == "" {
		c.Paths.State = "data/state/shortforge.db"
	}
	if c.Assets.Sounds == "" {
		c.Assets.Sounds = "assets/soundboard"
	}
	if c.Assets.Images == "" {
		c.Assets.Images = "assets/images"
	}
	if c.Moderation.KeywordsFile == "" {
		c.Moderation.KeywordsFile = "keywords.txt"
	}
	if c.OpenAI.Language == "" {
		c.OpenAI.Language = "id"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.YouTube.RedirectURL == "" {
		c.YouTube.RedirectURL = "http://localhost:8000/auth/callback"
	}
	if c.YouTube.TokenFile == "" {
		c.YouTube.TokenFile = "data/state/tokens.json"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Pipeline.ShortMaxSeconds == 0 {
		c.Pipeline.ShortMaxSeconds = 120
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}
	if c.Pipeline.FontSize == 0 {
		c.Pipeline.FontSize = 36
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
