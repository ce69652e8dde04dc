//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/recipe-service/internal/adapters/seeds"
)

// exchange is the last request a scenario made and what came back.
type exchange struct {
	status int
	header http.Header
	body   []byte
}

// catalogWorld is the state of one scenario. With BASE_URL set it talks to
// that service; otherwise each scenario gets its own sample-seeded service.
type catalogWorld struct {
	baseURL string
	client  *http.Client
	service *harness
	last    *exchange
}

var errNoExchange = errors.New("no request was made")

func (w *catalogWorld) start(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
	w.last = nil

	if w.baseURL = os.Getenv("BASE_URL"); w.baseURL != "" {
		return ctx, nil
	}

	h, err := startService(harnessOptions{}, seeds.Sample{})
	if err != nil {
		return ctx, fmt.Errorf("starting in-process service: %w", err)
	}

	w.service, w.baseURL = h, h.server.URL

	return ctx, nil
}

func (w *catalogWorld) stop(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
	if w.service != nil {
		w.service.server.Close()
		w.service = nil
	}

	return ctx, nil
}

func (w *catalogWorld) send(method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, w.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", method, path, err)
	}

	w.last = &exchange{status: resp.StatusCode, header: resp.Header, body: data}

	return nil
}

func (w *catalogWorld) serviceIsRunning() error {
	if err := w.send(http.MethodGet, "/-/live", nil); err != nil {
		return fmt.Errorf("service unreachable at %s: %w", w.baseURL, err)
	}

	if w.last.status != http.StatusOK {
		return fmt.Errorf("liveness answered %d", w.last.status)
	}

	return nil
}

func (w *catalogWorld) get(path string) error {
	return w.send(http.MethodGet, path, nil)
}

func (w *catalogWorld) submit(doc *godog.DocString) error {
	return w.send(http.MethodPost, "/api/v1/recipes", []byte(doc.Content))
}

func (w *catalogWorld) statusIs(want int) error {
	if w.last == nil {
		return errNoExchange
	}

	if w.last.status != want {
		return fmt.Errorf("status %d, want %d: %s", w.last.status, want, w.last.body)
	}

	return nil
}

func (w *catalogWorld) bodyContains(text string) error {
	if w.last == nil {
		return errNoExchange
	}

	if !bytes.Contains(w.last.body, []byte(text)) {
		return fmt.Errorf("body lacks %q: %s", text, w.last.body)
	}

	return nil
}

// idsAre compares the listed page's recipe ids, comma separated, in order.
func (w *catalogWorld) idsAre(want string) error {
	if w.last == nil {
		return errNoExchange
	}

	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}

	if err := json.Unmarshal(w.last.body, &page); err != nil {
		return fmt.Errorf("not a recipe page: %w: %s", err, w.last.body)
	}

	ids := make([]string, len(page.Items))
	for i, item := range page.Items {
		ids[i] = item.ID
	}

	if got := strings.Join(ids, ","); got != want {
		return fmt.Errorf("recipe ids %q, want %q", got, want)
	}

	return nil
}

// fieldIs compares a top-level field of a JSON object body in its printed form.
func (w *catalogWorld) fieldIs(field, want string) error {
	if w.last == nil {
		return errNoExchange
	}

	var obj map[string]any
	if err := json.Unmarshal(w.last.body, &obj); err != nil {
		return fmt.Errorf("not a JSON object: %w: %s", err, w.last.body)
	}

	value, ok := obj[field]
	if !ok {
		return fmt.Errorf("no %q field: %s", field, w.last.body)
	}

	if got := fmt.Sprint(value); got != want {
		return fmt.Errorf("%s is %q, want %q", field, got, want)
	}

	return nil
}

func (w *catalogWorld) headerPresent(name string) error {
	if w.last == nil {
		return errNoExchange
	}

	if w.last.header.Get(name) == "" {
		return fmt.Errorf("no %s header", name)
	}

	return nil
}

func initializeScenario(sc *godog.ScenarioContext) {
	w := &catalogWorld{client: &http.Client{Timeout: 10 * time.Second}}

	sc.Before(w.start)
	sc.After(w.stop)

	sc.Step(`^the service is running$`, w.serviceIsRunning)
	sc.Step(`^I request GET "([^"]*)"$`, w.get)
	sc.Step(`^I submit the recipe:$`, w.submit)
	sc.Step(`^the response status should be (\d+)$`, w.statusIs)
	sc.Step(`^the response should contain "([^"]*)"$`, w.bodyContains)
	sc.Step(`^the recipe ids should be "([^"]*)"$`, w.idsAre)
	sc.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, w.fieldIs)
	sc.Step(`^the header "([^"]*)" should be present$`, w.headerPresent)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "recipe-catalog",
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     os.Getenv("GODOG_TAGS"),
			TestingT: t,
		},
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite exited with status %d", status)
	}
}
