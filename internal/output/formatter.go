package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/AKJUS/solana-vrf/internal/config"
	"github.com/AKJUS/solana-vrf/pkg/events"
	"github.com/AKJUS/solana-vrf/pkg/programLog"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// DiscriminatorRow describes one registered event kind.
type DiscriminatorRow struct {
	Order         int    `json:"order" yaml:"order"`
	Kind          string `json:"kind" yaml:"kind"`
	Discriminator string `json:"discriminator" yaml:"discriminator"`
}

type Formatter struct {
	format string
	w      io.Writer
}

func NewFormatter(format string, w io.Writer) *Formatter {
	if format == "" {
		format = config.OutputText
	}
	return &Formatter{format: format, w: w}
}

// PrintEvents prints decoded events. The text format is one summary line per event.
func (f *Formatter) PrintEvents(decoded []*programLog.DecodedEvent) error {
	switch f.format {
	case config.OutputText:
		for _, de := range decoded {
			if _, err := fmt.Fprintln(f.w, events.Format(de.Event)); err != nil {
				return err
			}
		}
		return nil
	case config.OutputJSON:
		return f.printJSON(nonNil(decoded))
	case config.OutputYAML:
		return f.printYAML(nonNil(decoded))
	case config.OutputTable:
		return f.printEventsTable(decoded)
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// PrintEvent prints a single decoded event as it streams in. Structured
// formats emit one document per event.
func (f *Formatter) PrintEvent(de *programLog.DecodedEvent) error {
	switch f.format {
	case config.OutputJSON:
		return json.NewEncoder(f.w).Encode(de)
	case config.OutputYAML:
		if _, err := fmt.Fprintln(f.w, "---"); err != nil {
			return err
		}
		return f.printYAML(de)
	case config.OutputTable:
		_, err := fmt.Fprintf(f.w, "%-16s %s\n", de.Kind, events.Format(de.Event))
		return err
	default:
		return f.PrintEvents([]*programLog.DecodedEvent{de})
	}
}

func (f *Formatter) PrintDiscriminators(rows []DiscriminatorRow) error {
	switch f.format {
	case config.OutputJSON:
		return f.printJSON(rows)
	case config.OutputYAML:
		return f.printYAML(rows)
	case config.OutputText:
		for _, r := range rows {
			if _, err := fmt.Fprintf(f.w, "%d %s %s\n", r.Order, r.Kind, r.Discriminator); err != nil {
				return err
			}
		}
		return nil
	case config.OutputTable:
		table := f.newTable([]string{"ORDER", "KIND", "DISCRIMINATOR"})
		for _, r := range rows {
			table.Append([]string{strconv.Itoa(r.Order), r.Kind, r.Discriminator})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// Print formats and prints a key-value map based on the configured format
func (f *Formatter) Print(data map[string]interface{}) error {
	switch f.format {
	case config.OutputJSON:
		return f.printJSON(data)
	case config.OutputYAML:
		return f.printYAML(data)
	case config.OutputText, config.OutputTable:
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if f.format == config.OutputText {
			for _, k := range keys {
				if _, err := fmt.Fprintf(f.w, "%s: %v\n", k, data[k]); err != nil {
					return err
				}
			}
			return nil
		}

		table := f.newTable([]string{"Field", "Value"})
		for _, k := range keys {
			table.Append([]string{k, fmt.Sprintf("%v", data[k])})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

func (f *Formatter) printEventsTable(decoded []*programLog.DecodedEvent) error {
	if len(decoded) == 0 {
		_, err := fmt.Fprintln(f.w, "No events found")
		return err
	}

	table := f.newTable([]string{"LOG", "KIND", "SUMMARY"})
	for _, de := range decoded {
		table.Append([]string{strconv.Itoa(de.LogIndex), de.Kind.String(), events.Format(de.Event)})
	}
	table.Render()
	return nil
}

func (f *Formatter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(f.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetBorder(true)
	return table
}

func (f *Formatter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

func nonNil(decoded []*programLog.DecodedEvent) []*programLog.DecodedEvent {
	if decoded == nil {
		return []*programLog.DecodedEvent{}
	}
	return decoded
}
