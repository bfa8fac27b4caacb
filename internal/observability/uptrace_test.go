package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/starpick-admin/internal/config"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cases := []config.Config{
		{UptraceEnabled: false, ServiceName: "starpick-admin", ServiceVersion: "dev", AppEnv: config.EnvDev},
		{UptraceEnabled: true, UptraceDSN: "  ", ServiceName: "starpick-admin", AppEnv: config.EnvDev},
	}

	for _, cfg := range cases {
		shutdown, err := InitUptrace(cfg, logging.NewNop())
		if err != nil {
			t.Fatalf("init uptrace: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown uptrace: %v", err)
		}
	}
}
