package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/portfolio-web/portfolio/internal/logger/adapter/fiber"

	"github.com/portfolio-web/portfolio/internal/logger"
)

// accessLine implements the access log json format.
type accessLine struct {
	IP     net.IP `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	Error  string `json:"error"`
}

func consoleConfig() logger.Log {
	return logger.Log{
		EnableAccessLogToConsole: true,
		Console:                  logger.Console{Enabled: true},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		targetPath string
		config     adapter.Config
		want       *accessLine
	}{
		{
			name:       "console disabled no output at all",
			targetPath: "/",
			want:       nil,
		},
		{
			name:       "get / log to console json",
			targetPath: "/",
			config:     adapter.Config{Config: consoleConfig()},
			want:       &accessLine{Status: 200, URI: "/", Method: fiber.MethodGet},
		},
		{
			name:       "get log with params",
			targetPath: "/?test=123",
			config:     adapter.Config{Config: consoleConfig()},
			want:       &accessLine{Status: 200, URI: "/?test=123", Method: fiber.MethodGet},
		},
		{
			name:       "unknown route logs handled status",
			targetPath: "/no_path?test=123",
			config:     adapter.Config{Config: consoleConfig()},
			want: &accessLine{
				Status: 404, URI: "/no_path?test=123", Method: fiber.MethodGet, Error: "Cannot GET /no_path",
			},
		},
		{
			name:       "handler error logs handled status and error",
			targetPath: "/boom",
			config:     adapter.Config{Config: consoleConfig()},
			want:       &accessLine{Status: 500, URI: "/boom", Method: fiber.MethodGet, Error: "boom"},
		},
		{
			name:       "static assets skipped",
			targetPath: "/static/css/site.css",
			config: adapter.Config{Config: func() logger.Log {
				l := consoleConfig()
				l.DisableStaticAccessLog = true

				return l
			}()},
			want: nil,
		},
		{
			name:       "next skips logging",
			targetPath: "/",
			config: adapter.Config{
				Config: consoleConfig(),
				Next:   func(_ *fiber.Ctx) bool { return true },
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testMiddlewareHelper(t, tt.targetPath, tt.config)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			require.NotEmpty(t, output)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(output), &got))

			assert.Equal(t, "example.com", got.Host)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, net.ParseIP("0.0.0.0"), got.IP)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Error, got.Error)
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("hello test")
	})
	app.Get("/boom", func(_ *fiber.Ctx) error {
		return errors.New("boom") //nolint:goerr113
	})
	app.Get("/static/css/site.css", func(ctx *fiber.Ctx) error {
		return ctx.SendString("body{}")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr

	return <-outC, err
}
