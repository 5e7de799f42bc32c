package logSequencer

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const program = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"

func dataLine(t *testing.T, ev events.Event) string {
	raw, err := events.Encode(ev)
	require.NoError(t, err)
	return "Program data: " + base64.StdEncoding.EncodeToString(raw)
}

func Test_LogSequencer(t *testing.T) {
	t.Run("Should distribute events in order until the channel closes", func(t *testing.T) {
		l := zaptest.NewLogger(t)
		var received []events.Kind
		ls := NewLogSequencer(programLog.NewSession(program, l), func(de *programLog.DecodedEvent) error {
			received = append(received, de.Kind)
			return nil
		}, l)

		ch := ls.GetChannel()
		ch <- "Program " + program + " invoke [1]"
		ch <- dataLine(t, events.CalledBack{})
		ch <- "Program data: AAAA"
		ch <- dataLine(t, events.Transferred{})
		ch <- "Program " + program + " success"
		close(ch)

		require.NoError(t, ls.ProcessLogs(context.Background()))
		assert.Equal(t, []events.Kind{events.KindCalledBack, events.KindTransferred}, received)
	})
	t.Run("Should stop when the distribute func fails", func(t *testing.T) {
		l := zaptest.NewLogger(t)
		boom := errors.New("sink closed")
		ls := NewLogSequencer(programLog.NewSession("", l), func(de *programLog.DecodedEvent) error {
			return boom
		}, l)

		ch := ls.GetChannel()
		ch <- dataLine(t, events.CalledBack{})

		err := ls.ProcessLogs(context.Background())
		assert.ErrorIs(t, err, boom)
	})
	t.Run("Should stop on a decode error when asked to", func(t *testing.T) {
		l := zaptest.NewLogger(t)
		ls := NewLogSequencer(programLog.NewSession("", l), nil, l).
			WithDecodeErrorFunc(func(line string, err error) error {
				return err
			})

		ch := ls.GetChannel()
		ch <- "Program data: " + base64.StdEncoding.EncodeToString(events.WithdrawnDiscriminator[:])

		err := ls.ProcessLogs(context.Background())
		assert.ErrorIs(t, err, events.ErrMalformedPayload)
	})
	t.Run("Should return when the context is cancelled", func(t *testing.T) {
		l := zaptest.NewLogger(t)
		ls := NewLogSequencer(programLog.NewSession("", l), nil, l)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- ls.ProcessLogs(ctx)
		}()
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("log sequencer did not stop")
		}
	})
}
