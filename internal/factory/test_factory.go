package factory

import (
	"net/http"
	"net/http/httptest"

	"github.com/mcoot/decklist-exporter/internal/api"
	"github.com/mcoot/decklist-exporter/internal/backend"
	"github.com/mcoot/decklist-exporter/internal/dependencies/mocks"
	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/storage/memory"
	"github.com/mcoot/decklist-exporter/internal/testutil"
)

// TestApp extends App with test-specific helpers. Its backend client talks
// to an in-process development backend over a real HTTP listener.
type TestApp struct {
	*App

	// Mocks for test control
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
	Server     *httptest.Server
}

// TestOption customizes a TestApp
type TestOption func(*testOptions)

type testOptions struct {
	requirePhone bool
	wrap         func(http.Handler) http.Handler
}

// WithRequirePhone enables the phone-number form variant
func WithRequirePhone() TestOption {
	return func(o *testOptions) { o.requirePhone = true }
}

// WithBackendWrapper wraps the development backend handler, e.g. to inject
// failures
func WithBackendWrapper(wrap func(http.Handler) http.Handler) TestOption {
	return func(o *testOptions) { o.wrap = wrap }
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Call Close when done.
func NewTestApp(opts ...TestOption) *TestApp {
	var o testOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger := testutil.NopLogger()
	store := memory.New()
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockRandom, nil, exporter.Config{RequirePhone: o.requirePhone}, logger)

	var h http.Handler = api.NewRouter(api.RouterConfig{
		Logger:      logger,
		DeckService: app.DeckService,
	})
	if o.wrap != nil {
		h = o.wrap(h)
	}
	srv := httptest.NewServer(h)
	app.Backend = backend.New(srv.URL, backend.WithHTTPClient(srv.Client()))

	return &TestApp{
		App:        app,
		MockRandom: mockRandom,
		Memory:     store,
		Server:     srv,
	}
}

// Close stops the in-process backend
func (t *TestApp) Close() {
	t.Server.Close()
}
