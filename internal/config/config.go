package config

import "os"

// Config holds every environment-driven setting. It is read once at process
// start; there is no hot-reload.
type Config struct {
	HTTPAddr     string
	BaseURL      string
	MySQLDSN     string
	JWTSecret    string
	GoogleID     string
	GoogleSecret string
	CORSOrigin   string
	UploadDir    string
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		BaseURL:      getenv("BASE_URL", "http://localhost:8080"),
		MySQLDSN:     getenv("MYSQL_DSN", "root:secret@tcp(127.0.0.1:3306)/maisonbelle?parseTime=true"),
		JWTSecret:    getenv("JWT_SECRET", "dev-only-secret-change-me"),
		GoogleID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		CORSOrigin:   getenv("CORS_ORIGIN", "http://localhost:3000"),
		UploadDir:    getenv("UPLOAD_DIR", "./uploads"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
