package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTagsMergesAndSorts(t *testing.T) {
	got := formatTags(
		map[string]string{"env": "prod", "service": "drms"},
		map[string]string{"result": "success", "env": "staging"},
	)
	assert.Equal(t, "|#env:staging,result:success,service:drms", got)
}

func TestFormatTagsEmpty(t *testing.T) {
	assert.Empty(t, formatTags(nil, nil))
	assert.Empty(t, formatTags(map[string]string{"": "x"}, nil))
}

func TestMetricNamePrefixing(t *testing.T) {
	c := &Client{prefix: "drms"}
	assert.Equal(t, "drms.sla_monitor.cycle", c.metricName("sla_monitor.cycle"))
	assert.Equal(t, "drms", c.metricName(""))

	c = &Client{}
	assert.Equal(t, "sla_monitor.cycle", c.metricName("sla_monitor.cycle"))
}

func TestNormalizeMetricName(t *testing.T) {
	assert.Equal(t, "a.b_c", normalizeMetricName(" a..b/c. "))
}

func TestDisabledClientIsSilent(t *testing.T) {
	client, err := NewClient(Config{Enabled: false})
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// Must not panic or block without a connection.
	client.Count("sla_monitor.cycle", 1, nil)
	client.Gauge("sla_monitor.cases_checked", 5, nil)
	client.Timing("sla_monitor.cycle_duration", time.Second, nil)
	require.NoError(t, client.Close())
}

func TestNilClientIsSilent(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.Count("x", 1, nil)
	require.NoError(t, client.Close())
}

func TestClientWritesLineProtocol(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	client, err := NewClient(Config{
		Enabled:    true,
		Address:    pc.LocalAddr().String(),
		Prefix:     "drms",
		GlobalTags: map[string]string{"env": "test"},
	})
	require.NoError(t, err)
	defer client.Close()
	require.True(t, client.Enabled())

	client.Count("sla_monitor.cycle", 1, map[string]string{"result": "success"})

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 512)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "drms.sla_monitor.cycle:1|c|#env:test,result:success", string(buf[:n]))
}
