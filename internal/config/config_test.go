package config

import (
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	assert.NoError(t, err)

	check.Equal(t, "3000", cfg.Server.Port)
	check.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	check.Equal(t, 60*time.Second, cfg.Worker.RecheckInterval)
	check.Equal(t, 5*time.Second, cfg.Notify.Timeout)
	check.Equal(t, "procurement-committee", cfg.Notify.MinistryRecipientID)
	check.Equal(t, "", cfg.Notify.WebhookURL)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("RECHECK_INTERVAL", "15s")
	t.Setenv("NOTIFY_WEBHOOK_URL", "http://hooks.local/notify")
	t.Setenv("DB_NAME", "tenders")

	cfg, err := Parse()
	assert.NoError(t, err)

	check.Equal(t, "8080", cfg.Server.Port)
	check.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	check.Equal(t, 15*time.Second, cfg.Worker.RecheckInterval)
	check.Equal(t, "http://hooks.local/notify", cfg.Notify.WebhookURL)
	check.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=tenders sslmode=disable", cfg.GetDatabaseDSN())
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"STORE_DRIVER":     "sqlite",
		"RECHECK_INTERVAL": "0s",
		"NOTIFY_TIMEOUT":   "soon",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Parse()
			check.Error(t, err)
		})
	}
}
