package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Hub.SendBuffer < 1 {
		return fmt.Errorf("hub.send_buffer must be >= 1 (got %d)", c.Hub.SendBuffer)
	}
	if c.Hub.WriteTimeout <= 0 {
		return fmt.Errorf("hub.write_timeout must be > 0 (got %v)", c.Hub.WriteTimeout)
	}
	if c.Hub.PingInterval <= 0 {
		return fmt.Errorf("hub.ping_interval must be > 0 (got %v)", c.Hub.PingInterval)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}
