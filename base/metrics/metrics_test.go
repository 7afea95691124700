package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type metricsSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(metricsSuite))
}

func (s *metricsSuite) TestParseTag() {
	s.Nil(parseTag(nil))
	s.Equal([]string{"method:eth_call", "service:ENS"}, parseTag([]string{"method", "eth_call", "service", "ENS"}))
	s.Panics(func() { parseTag([]string{"odd"}) })
}

func (s *metricsSuite) TestBumpWithoutAgent() {
	m := New("test", WithoutPodName())
	s.NotPanics(func() {
		m.BumpSum("rpc.err", 1, "method", "eth_call")
		m.BumpAvg("queue", 2)
		m.BumpHistogram("size", 3)
		m.BumpTime("rpc.latency", "method", "eth_call").End()
	})
}

type recordingClient struct {
	mu   sync.Mutex
	tags map[string][]string
}

func (rc *recordingClient) record(name string, tags []string) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.tags[name] = tags
	return nil
}

func (rc *recordingClient) Gauge(name string, value float64, tags []string, rate float64) error {
	return rc.record(name, tags)
}

func (rc *recordingClient) Count(name string, value int64, tags []string, rate float64) error {
	return rc.record(name, tags)
}

func (rc *recordingClient) Histogram(name string, value float64, tags []string, rate float64) error {
	return rc.record(name, tags)
}

func (rc *recordingClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return rc.record(name, tags)
}

func (s *metricsSuite) TestRenderedTags() {
	initOnce.Do(initDDClient)
	saved := ddClients
	defer func() { ddClients = saved }()

	rc := &recordingClient{tags: map[string][]string{}}
	ddClients = make([]statsCli, ddClientsSize)
	for i := range ddClients {
		ddClients[i] = rc
	}

	m := New("provider", WithoutPodName())
	m.BumpSum("rpc.err", 1, "method", "eth_call", "service", "RNS")
	m.BumpTime("rpc.latency", "method", "eth_call", "service", "RNS").End()

	for _, key := range []string{"provider.rpc.err", "provider.rpc.latency"} {
		tags := rc.tags[key]
		s.Require().Len(tags, 5, key)
		s.Equal([]string{"method:eth_call", "service:RNS"}, tags[3:], key)
	}
}
