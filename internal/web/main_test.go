package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/portfolio-web/portfolio/internal/config"
	"github.com/portfolio-web/portfolio/internal/db/controller/project"
	"github.com/portfolio-web/portfolio/internal/db/models"
	"github.com/portfolio-web/portfolio/internal/mailer/mailertest"
	"github.com/portfolio-web/portfolio/internal/web/handler/contact"
)

const (
	displayName = "Test Person"
	mailbox     = "owner@example.com"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Site:      config.Site{DisplayName: displayName, Title: "Portfolio"},
		Mail:      config.Mail{Server: "localhost", Port: 25, Username: mailbox},
		Webserver: config.Webserver{Port: 5000},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "web.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}))

	return db
}

type testEnv struct {
	service *Service
	db      *gorm.DB
	sender  *mailertest.Recorder
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	env := &testEnv{
		db:     newTestDB(t),
		sender: &mailertest.Recorder{},
	}
	env.service = New(cfg, env.db, env.sender)

	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) (int, string) {
	t.Helper()

	resp, err := e.service.App.Test(req, -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func (e *testEnv) get(t *testing.T, target string) (int, string) {
	t.Helper()

	return e.do(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func (e *testEnv) postContact(t *testing.T, form url.Values) (int, contact.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body := e.do(t, req)

	var resp contact.Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp), "body: %s", body)

	return status, resp
}

func TestHomeEmpty(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	status, body := env.get(t, "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, displayName)
	assert.Contains(t, body, "No projects yet.")
	assert.NotContains(t, body, "data-project-id")
}

func TestHomeListsProjectsInInsertionOrder(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	titles := []string{"Zeta Service", "Alpha Tool", "Mu Library"}
	for _, title := range titles {
		require.NoError(t, project.Create(env.db, &models.Project{
			Title:        title,
			Description:  "about " + title,
			Technologies: "Go, SQL",
			GithubLink:   "https://github.com/example/" + strings.ReplaceAll(title, " ", "-"),
		}))
	}

	status, body := env.get(t, "/")
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, len(titles), strings.Count(body, "data-project-id="))
	assert.NotContains(t, body, "No projects yet.")
	assert.Contains(t, body, "<li>Go</li>")

	last := -1
	for _, title := range titles {
		idx := strings.Index(body, title)
		require.NotEqual(t, -1, idx, title)
		assert.Greater(t, idx, last, "%s out of order", title)
		last = idx
	}
}

func TestHomeStoreFailureRendersServerError(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status, body := env.get(t, "/")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "Something went wrong")
	assert.NotContains(t, body, "database is closed")
}

func TestAbout(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	status, body := env.get(t, "/about")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "About Me")
	assert.Contains(t, body, "I'm "+displayName)
	assert.Contains(t, body, `href="/about" class="active"`)
}

func TestContactForm(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	status, body := env.get(t, "/contact")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, `name="message"`)
	assert.Empty(t, env.sender.Messages())
}

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Let's build something."},
	}

	status, resp := env.postContact(t, form)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, contact.Response{Success: true}, resp)

	msgs := env.sender.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "ada@example.com", msgs[0].From)
	assert.Equal(t, []string{mailbox}, msgs[0].To)
	assert.Contains(t, msgs[0].Body, "Ada")
	assert.Contains(t, msgs[0].Body, "ada@example.com")
	assert.Contains(t, msgs[0].Body, "Let's build something.")
}

func TestContactSubmitMissingFields(t *testing.T) {
	full := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}

	for _, field := range []string{"name", "email", "message"} {
		for _, mode := range []string{"absent", "empty"} {
			t.Run(field+" "+mode, func(t *testing.T) {
				env := newTestEnv(t, newTestConfig())

				form := url.Values{}
				for k, v := range full {
					form[k] = v
				}

				if mode == "absent" {
					form.Del(field)
				} else {
					form.Set(field, "")
				}

				status, resp := env.postContact(t, form)

				assert.Equal(t, http.StatusOK, status)
				assert.Equal(t, contact.Response{Success: false, Error: "All fields are required"}, resp)
				assert.Empty(t, env.sender.Messages())
			})
		}
	}
}

func TestContactSubmitTransportFailure(t *testing.T) {
	env := newTestEnv(t, newTestConfig())
	env.sender.Err = errors.New("dial tcp 127.0.0.1:25: connect: connection refused") //nolint:goerr113

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}}

	status, resp := env.postContact(t, form)

	assert.Equal(t, http.StatusOK, status)
	assert.False(t, resp.Success)
	assert.Equal(t, "dial tcp 127.0.0.1:25: connect: connection refused", resp.Error)
	assert.Len(t, env.sender.Messages(), 1)
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			status, body := env.do(t, httptest.NewRequest(method, "/does-not-exist", nil))

			assert.Equal(t, http.StatusNotFound, status)
			assert.Contains(t, body, "does not exist")
			assert.Contains(t, body, displayName)
		})
	}

	status, _ := env.do(t, httptest.NewRequest(http.MethodDelete, "/contact", nil))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.get(t, "/static/css/missing.css")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStaticFiles(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	status, body := env.get(t, "/static/css/style.css")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, ".project-card")
}

func TestMetrics(t *testing.T) {
	env := newTestEnv(t, newTestConfig())

	status, _ := env.get(t, "/metrics")
	assert.Equal(t, http.StatusNotFound, status)

	cfg := newTestConfig()
	cfg.Webserver.Metrics = true
	env = newTestEnv(t, cfg)

	// one submission so the counter vector has a series
	_, _ = env.postContact(t, url.Values{})

	status, body := env.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "contact_submissions_total")
}

func TestNewPanicsOnMissingDependencies(t *testing.T) {
	db := newTestDB(t)
	sender := &mailertest.Recorder{}

	assert.Panics(t, func() { New(nil, db, sender) })
	assert.Panics(t, func() { New(newTestConfig(), nil, sender) })
	assert.Panics(t, func() { New(newTestConfig(), db, nil) })
}
