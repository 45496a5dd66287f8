package config

import "testing"

// TestLoadDefaults verifies development defaults are applied when the
// environment is empty.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port: got %q, want %q", cfg.Port, "8080")
	}
	if cfg.DBName != "folio" {
		t.Errorf("db name: got %q, want %q", cfg.DBName, "folio")
	}
	if cfg.AdminEmail != "admin@localhost" {
		t.Errorf("admin email: got %q, want %q", cfg.AdminEmail, "admin@localhost")
	}
}

// TestLoadProductionGuards verifies production refuses default secrets.
func TestLoadProductionGuards(t *testing.T) {
	tests := []struct {
		name    string
		dbPass  string
		admin   string
		wantErr bool
	}{
		{name: "default db password rejected", dbPass: "changeme", admin: "$2a$10$x", wantErr: true},
		{name: "missing admin hash rejected", dbPass: "secret", admin: "", wantErr: true},
		{name: "all secrets set", dbPass: "secret", admin: "$2a$10$x", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv("POSTGRES_PASSWORD", tt.dbPass)
			t.Setenv("ADMIN_PASSWORD_HASH", tt.admin)

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestDSN verifies the connection string format.
func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

// TestAddr verifies host:port formatting.
func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: "9000"}
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9000")
	}
}
