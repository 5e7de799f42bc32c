package programLog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type transactionMeta struct {
	LogMessages []string `json:"logMessages"`
}

type transactionDump struct {
	Result *struct {
		Meta *transactionMeta `json:"meta"`
	} `json:"result"`
	Meta        *transactionMeta `json:"meta"`
	LogMessages []string         `json:"logMessages"`
}

// ReadLogMessages reads transaction log messages from r. It accepts a
// getTransaction JSON response (with or without the RPC envelope), a JSON
// array of strings, or plain text with one log line per line.
func ReadLogMessages(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read log messages")
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var logs []string
		if err := json.Unmarshal(trimmed, &logs); err != nil {
			return nil, errors.Wrap(err, "failed to parse log message array")
		}
		return logs, nil
	case '{':
		var dump transactionDump
		if err := json.Unmarshal(trimmed, &dump); err != nil {
			return nil, errors.Wrap(err, "failed to parse transaction")
		}
		switch {
		case dump.Result != nil && dump.Result.Meta != nil:
			return dump.Result.Meta.LogMessages, nil
		case dump.Meta != nil:
			return dump.Meta.LogMessages, nil
		case dump.LogMessages != nil:
			return dump.LogMessages, nil
		}
		return nil, errors.New("transaction has no log messages")
	}

	var logs []string
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logs = append(logs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan log messages")
	}
	return logs, nil
}
