package config

// Rate limit configuration
type RateLimitConfig struct {
	Rate  int // Maximum requests per minute
	Burst int // Burst capacity
}

var DefaultRateLimit = RateLimitConfig{
	Rate:  10000,
	Burst: 1500,
}

// UploadRateLimit throttles the multipart upload endpoint harder than the rest of the API
var UploadRateLimit = RateLimitConfig{
	Rate:  600,
	Burst: 50,
}
