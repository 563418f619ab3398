package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	JWTSecret       string
	AccessTTLHours  int
	AdminMobiles    []string
	RazorpayKeyID   string
	RazorpaySecret  string
	RedisAddr       string
	RateLimitPerMin int
	RabbitURL       string
	DDEnabled       bool
}

func Load() Config {
	return Config{
		Port:            getenv("APP_PORT", "8080"),
		Env:             getenv("ENV", "dev"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "jewel_db"),
		JWTSecret:       getenv("JWT_SECRET", "default_secret_key"),
		AccessTTLHours:  atoi(getenv("ACCESS_TTL_HOURS", "72")),
		AdminMobiles:    splitCSV(getenv("ADMIN_MOBILE_NUMBERS", "")),
		RazorpayKeyID:   getenv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret:  getenv("RAZORPAY_KEY_SECRET", ""),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "30")),
		RabbitURL:       getenv("RABBIT_URL", ""),
		DDEnabled:       getenv("DD_ENABLED", "") == "true",
	}
}

// AdminSet returns the admin allowlist as a lookup set.
func (c Config) AdminSet() map[string]bool {
	set := make(map[string]bool, len(c.AdminMobiles))
	for _, m := range c.AdminMobiles {
		set[m] = true
	}
	return set
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
