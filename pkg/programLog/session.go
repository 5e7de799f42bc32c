package programLog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	programDataPrefix = "Program data: "
	signaturePrefix   = "Signature: "
)

var (
	invokeLine      = regexp.MustCompile(`^Program (\S+) invoke \[(\d+)\]$`)
	successLine     = regexp.MustCompile(`^Program (\S+) success$`)
	failedLine      = regexp.MustCompile(`^Program (\S+) failed: `)
	transactionLine = regexp.MustCompile(`^Transaction executed in slot (\d+)`)
)

// DecodedEvent is an event found in a program log together with where it
// was found.
type DecodedEvent struct {
	Signature string       `json:"signature,omitempty" yaml:"signature,omitempty"`
	Slot      uint64       `json:"slot,omitempty" yaml:"slot,omitempty"`
	LogIndex  int          `json:"logIndex" yaml:"logIndex"`
	ProgramId string       `json:"programId,omitempty" yaml:"programId,omitempty"`
	Depth     int          `json:"depth" yaml:"depth"`
	Kind      events.Kind  `json:"kind" yaml:"kind"`
	Event     events.Event `json:"event" yaml:"event"`
}

func (de *DecodedEvent) String() string {
	return events.Format(de.Event)
}

// Session follows the invocation stack of program log lines fed to it one
// at a time. A Session is not safe for concurrent use.
type Session struct {
	programId string
	logger    *zap.Logger

	index     int
	slot      uint64
	signature string
	stack     []string
}

// NewSession creates a session. With a non-empty programId only data
// records logged while that program is executing are decoded.
func NewSession(programId string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		programId: programId,
		logger:    logger,
	}
}

// Reset forgets the invocation stack, as at the start of a new transaction.
func (s *Session) Reset() {
	s.index = 0
	s.slot = 0
	s.signature = ""
	s.stack = s.stack[:0]
}

// Feed consumes one log line. It returns the decoded event for data records
// of the watched program, nil for every other line, and an error when a data
// record of the watched program cannot be decoded. Records whose discriminator
// is unknown are skipped.
func (s *Session) Feed(raw string) (*DecodedEvent, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil, nil
	}

	if m := transactionLine.FindStringSubmatch(line); m != nil {
		s.Reset()
		s.slot, _ = strconv.ParseUint(m[1], 10, 64)
		return nil, nil
	}
	if strings.HasPrefix(line, signaturePrefix) {
		s.signature = strings.TrimSpace(strings.TrimPrefix(line, signaturePrefix))
		return nil, nil
	}
	if strings.HasPrefix(line, "Log Messages:") || strings.HasPrefix(line, "Status:") {
		return nil, nil
	}

	index := s.index
	s.index++

	if m := invokeLine.FindStringSubmatch(line); m != nil {
		s.stack = append(s.stack, m[1])
		return nil, nil
	}
	if m := successLine.FindStringSubmatch(line); m != nil {
		s.pop(m[1])
		return nil, nil
	}
	if m := failedLine.FindStringSubmatch(line); m != nil {
		s.pop(m[1])
		return nil, nil
	}
	if strings.HasPrefix(line, programDataPrefix) {
		return s.decodeData(index, strings.TrimPrefix(line, programDataPrefix))
	}
	return nil, nil
}

func (s *Session) current() string {
	if len(s.stack) == 0 {
		return ""
	}
	return s.stack[len(s.stack)-1]
}

func (s *Session) pop(programId string) {
	if len(s.stack) == 0 {
		return
	}
	if top := s.current(); top != programId {
		s.logger.Sugar().Debugw("Unbalanced program log",
			zap.String("expected", top),
			zap.String("got", programId),
		)
	}
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Session) decodeData(index int, data string) (*DecodedEvent, error) {
	current := s.current()
	if s.programId != "" && current != s.programId {
		return nil, nil
	}

	var payload []byte
	for _, chunk := range strings.Fields(data) {
		b, err := DecodePayload(chunk, Encoding_Base64)
		if err != nil {
			return nil, errors.Wrapf(err, "log line %d", index)
		}
		payload = append(payload, b...)
	}

	ev, err := events.TryFromBytes(payload)
	if err != nil {
		if errors.Is(err, events.ErrUnknownEvent) {
			s.logger.Debug("Skipping program data with unknown discriminator",
				zap.Int("logIndex", index),
				zap.String("programId", current),
			)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "log line %d", index)
	}

	return &DecodedEvent{
		Signature: s.signature,
		Slot:      s.slot,
		LogIndex:  index,
		ProgramId: current,
		Depth:     len(s.stack),
		Kind:      ev.Kind(),
		Event:     ev,
	}, nil
}
