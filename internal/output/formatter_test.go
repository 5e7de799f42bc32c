package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const client = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"

func decodedWithdrawal() *programLog.DecodedEvent {
	ev := events.Withdrawn{
		Client: events.MustPubkeyFromBase58(client),
		Amount: 1_500_000_000,
	}
	return &programLog.DecodedEvent{LogIndex: 3, Depth: 1, Kind: ev.Kind(), Event: ev}
}

func TestFormatter_PrintEvents(t *testing.T) {
	decoded := []*programLog.DecodedEvent{decodedWithdrawal()}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter("", &buf).PrintEvents(decoded))
		assert.Equal(t, "Withdrawn: 1.5 SOL from "+client+" by 11111111111111111111111111111111\n", buf.String())
	})
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter("json", &buf).PrintEvents(decoded))

		var out []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "Withdrawn", out[0]["kind"])
		assert.Equal(t, float64(3), out[0]["logIndex"])
		assert.Equal(t, client, out[0]["event"].(map[string]interface{})["client"])
	})
	t.Run("json without events", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter("json", &buf).PrintEvents(nil))
		assert.Equal(t, "[]\n", buf.String())
	})
	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter("yaml", &buf).PrintEvents(decoded))
		assert.Contains(t, buf.String(), "kind: Withdrawn")
		assert.Contains(t, buf.String(), "client: "+client)
		assert.Contains(t, buf.String(), "amount: 1500000000")
	})
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter("table", &buf).PrintEvents(decoded))
		assert.Contains(t, buf.String(), "KIND")
		assert.Contains(t, buf.String(), "Withdrawn: 1.5 SOL")
	})
	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, NewFormatter("xml", &buf).PrintEvents(decoded))
	})
}

func TestFormatter_PrintEvent(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter("json", &buf)
	require.NoError(t, f.PrintEvent(decodedWithdrawal()))
	require.NoError(t, f.PrintEvent(decodedWithdrawal()))

	dec := json.NewDecoder(&buf)
	count := 0
	for dec.More() {
		var m map[string]interface{}
		require.NoError(t, dec.Decode(&m))
		count++
	}
	assert.Equal(t, 2, count)
}

func TestFormatter_PrintDiscriminators(t *testing.T) {
	rows := []DiscriminatorRow{{Order: 1, Kind: "Withdrawn", Discriminator: "1459dfc6c27cdb0d"}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text", &buf).PrintDiscriminators(rows))
	assert.Equal(t, "1 Withdrawn 1459dfc6c27cdb0d\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter("table", &buf).PrintDiscriminators(rows))
	assert.Contains(t, buf.String(), "DISCRIMINATOR")
	assert.Contains(t, buf.String(), "1459dfc6c27cdb0d")
}

func TestFormatter_Print(t *testing.T) {
	data := map[string]interface{}{"output": "text", "encoding": "base64"}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter("text", &buf).Print(data))
	assert.Equal(t, "encoding: base64\noutput: text\n", buf.String())
}
