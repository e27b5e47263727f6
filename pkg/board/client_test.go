package board

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// stubTransport answers every board API request with a minimal valid
// body and records when each request arrived.
type stubTransport struct {
	mu        sync.Mutex
	callTimes []time.Time

	// queryPages scripts successive Database.Query responses; empty means
	// a single page of zero results.
	queryPages []string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.callTimes = append(s.callTimes, time.Now())
	n := len(s.callTimes)
	s.mu.Unlock()

	var body string
	switch {
	case strings.HasSuffix(req.URL.Path, "/query"):
		if len(s.queryPages) > 0 {
			body = s.queryPages[(n-1)%len(s.queryPages)]
		} else {
			body = `{"object":"list","results":[],"has_more":false}`
		}
	default:
		body = `{"object":"page","id":"00000000-0000-0000-0000-000000000000"}`
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func (s *stubTransport) times() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.callTimes...)
}

func stubClient(transport *stubTransport, requestsPerSecond float64) *Client {
	return &Client{
		api: notionapi.NewClient("secret-test",
			notionapi.WithHTTPClient(&http.Client{Transport: transport})),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func TestClient_RateLimiterPacesCalls(t *testing.T) {
	// Scaled-up rate to keep the test fast; the token bucket arithmetic is
	// rate-independent, so a cap that holds at 20 req/s holds at the
	// production 3 req/s too.
	const rps = 20.0
	const calls = 12

	transport := &stubTransport{}
	c := stubClient(transport, rps)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < calls; i++ {
		require.NoError(t, c.UpdateStatus(ctx, "page-1", "Queued"))
	}
	elapsed := time.Since(start)

	// Burst 1: the nth call cannot fire before (n-1)/rps.
	minElapsed := time.Duration(float64(calls-1) / rps * float64(time.Second))
	assert.GreaterOrEqual(t, elapsed, minElapsed-20*time.Millisecond)

	// No window anywhere in the burst holds more than rate*window+burst
	// calls: any 4 consecutive calls span at least 3 limiter periods.
	times := transport.times()
	require.Len(t, times, calls)
	period := time.Duration(float64(time.Second) / rps)
	for i := 0; i+3 < len(times); i++ {
		assert.GreaterOrEqual(t, times[i+3].Sub(times[i]), 3*period-20*time.Millisecond,
			"calls %d..%d arrived too close together", i, i+3)
	}
}

func TestClient_QueryPagesPaginates(t *testing.T) {
	transport := &stubTransport{queryPages: []string{
		`{"object":"list","results":[{"object":"page","id":"11111111-1111-1111-1111-111111111111","properties":{}}],"has_more":true,"next_cursor":"cursor-2"}`,
		`{"object":"list","results":[{"object":"page","id":"22222222-2222-2222-2222-222222222222","properties":{}}],"has_more":false}`,
	}}
	c := stubClient(transport, 50)

	pages, err := c.QueryPages(context.Background(), "db-1")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", pages[0].ID)

	// Each page of results costs one rate-limited API call.
	assert.Len(t, transport.times(), 2)
}
