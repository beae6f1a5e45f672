package render

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/duration"
)

// EmptyNotice is the text shown when there is no result.
const EmptyNotice = "No pace yet: enter a goal marathon time such as 03:00:00."

// labelWidth aligns text values in one column.
const labelWidth = 20

// document is the YAML/JSON shape of a result.
type document struct {
	Goal      string `yaml:"goal"`
	Unit      string `yaml:"unit"`
	UnitLabel string `yaml:"unit_label"`
	MP        string `yaml:"mp"`
	LT        string `yaml:"lt,omitempty"`
	GA        string `yaml:"ga,omitempty"`
	LR        string `yaml:"lr,omitempty"`
}

// Write renders r to w. A nil result renders the empty state.
func Write(w io.Writer, r *pace.Result, opts Options) error {
	switch opts.Format {
	case YAML:
		return writeYAML(w, r, opts.Detailed)
	case JSON:
		return writeJSON(w, r, opts.Detailed)
	case Text, "":
		return writeText(w, r, opts.Detailed)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// zonesFor lists the zones visible with the given detail setting.
func zonesFor(detailed bool) []pace.Zone {
	if !detailed {
		return []pace.Zone{pace.MarathonPace}
	}

	return pace.Zones()
}

func writeText(w io.Writer, r *pace.Result, detailed bool) error {
	if r == nil {
		if _, err := fmt.Fprintln(w, EmptyNotice); err != nil {
			return fmt.Errorf("write text: %w", err)
		}

		return nil
	}

	for _, z := range zonesFor(detailed) {
		if _, err := fmt.Fprintf(w, "%-*s %s %s\n", labelWidth, z.Name+":", r.Pace(z), r.UnitLabel); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}

	return nil
}

// toDocument converts r to the serializable shape.
func toDocument(r *pace.Result, detailed bool) *document {
	doc := &document{
		Goal:      duration.Format(r.TotalSeconds),
		Unit:      string(r.Unit),
		UnitLabel: r.UnitLabel,
		MP:        r.MP,
	}

	if detailed {
		doc.LT = r.LT
		doc.GA = r.GA
		doc.LR = r.LR
	}

	return doc
}

func writeYAML(w io.Writer, r *pace.Result, detailed bool) error {
	var v any
	if r != nil {
		v = toDocument(r, detailed)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}

	return nil
}

// toValue builds the protobuf JSON value for r; nil becomes JSON null.
func toValue(r *pace.Result, detailed bool) (*structpb.Value, error) {
	if r == nil {
		return structpb.NewNullValue(), nil
	}

	doc := toDocument(r, detailed)
	fields := map[string]any{
		"goal":       doc.Goal,
		"unit":       doc.Unit,
		"unit_label": doc.UnitLabel,
		"mp":         doc.MP,
	}

	if detailed {
		fields["lt"] = doc.LT
		fields["ga"] = doc.GA
		fields["lr"] = doc.LR
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build json object: %w", err)
	}

	return structpb.NewStructValue(s), nil
}

func writeJSON(w io.Writer, r *pace.Result, detailed bool) error {
	value, err := toValue(r, detailed)
	if err != nil {
		return err
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	return nil
}
