package logSequencer

import (
	"context"

	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"go.uber.org/zap"
)

const defaultBufferSize = 10000

// DistributeEventFunc receives every decoded event in log order.
type DistributeEventFunc func(*programLog.DecodedEvent) error

// DecodeErrorFunc decides what to do with a record that failed to decode.
// Returning an error stops the sequencer.
type DecodeErrorFunc func(line string, err error) error

type LogSequencer struct {
	sequencerChannel chan string
	logger           *zap.Logger

	session *programLog.Session

	distributeEventFunc DistributeEventFunc
	decodeErrorFunc     DecodeErrorFunc
}

func NewLogSequencer(
	session *programLog.Session,
	def DistributeEventFunc,
	logger *zap.Logger,
) *LogSequencer {
	return &LogSequencer{
		sequencerChannel:    make(chan string, defaultBufferSize),
		logger:              logger,
		session:             session,
		distributeEventFunc: def,
	}
}

// WithDecodeErrorFunc replaces the default policy of logging and skipping
// records that fail to decode.
func (ls *LogSequencer) WithDecodeErrorFunc(f DecodeErrorFunc) *LogSequencer {
	ls.decodeErrorFunc = f
	return ls
}

func (ls *LogSequencer) GetChannel() chan<- string {
	return ls.sequencerChannel
}

// ProcessLogs consumes log lines until ctx is done or the channel is closed.
func (ls *LogSequencer) ProcessLogs(ctx context.Context) error {
	for {
		select {
		case line, ok := <-ls.sequencerChannel:
			if !ok {
				ls.logger.Debug("Log sequencer channel closed, stopping processing logs")
				return nil
			}
			if err := ls.processLine(line); err != nil {
				ls.logger.Error("Error processing log", zap.Error(err))
				return err
			}
		case <-ctx.Done():
			ls.logger.Info("Log sequencer context done, stopping processing logs")
			return nil
		}
	}
}

func (ls *LogSequencer) processLine(line string) error {
	decoded, err := ls.session.Feed(line)
	if err != nil {
		if ls.decodeErrorFunc != nil {
			return ls.decodeErrorFunc(line, err)
		}
		ls.logger.Warn("Skipping undecodable program data", zap.Error(err))
		return nil
	}
	if decoded == nil || ls.distributeEventFunc == nil {
		return nil
	}
	if err := ls.distributeEventFunc(decoded); err != nil {
		ls.logger.Error("Error distributing event", zap.Error(err))
		return err
	}
	return nil
}
