// Package programLog extracts VRF callback program events from Solana
// transaction log messages.
package programLog

import (
	"go.uber.org/zap"
)

// Failure is a data record of the watched program that could not be decoded.
type Failure struct {
	LogIndex int
	Err      error
}

// ParsedLogs is the result of parsing the log messages of one transaction.
type ParsedLogs struct {
	Events   []*DecodedEvent
	Failures []Failure
}

// Parser decodes complete transaction logs.
type Parser struct {
	programId string
	logger    *zap.Logger
}

// NewParser creates a Parser. An empty programId decodes data records of
// every program.
func NewParser(programId string, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		programId: programId,
		logger:    logger,
	}
}

// NewSession starts an incremental session with the parser's settings.
func (p *Parser) NewSession() *Session {
	return NewSession(p.programId, p.logger)
}

// ParseLogs decodes every event in logs. Records that fail to decode are
// collected as failures and do not stop parsing.
func (p *Parser) ParseLogs(logs []string) *ParsedLogs {
	session := p.NewSession()
	parsed := &ParsedLogs{}

	for i, line := range logs {
		de, err := session.Feed(line)
		if err != nil {
			p.logger.Sugar().Errorw("Failed to decode program data",
				zap.Int("line", i),
				zap.Error(err),
			)
			parsed.Failures = append(parsed.Failures, Failure{LogIndex: i, Err: err})
			continue
		}
		if de != nil {
			p.logger.Sugar().Debugw("Decoded event",
				zap.String("kind", de.Kind.String()),
				zap.Int("line", i),
			)
			parsed.Events = append(parsed.Events, de)
		}
	}
	return parsed
}
