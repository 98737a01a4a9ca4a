package entities

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventRecord is a dated historical event carrying an astrological
// signature (body name -> ecliptic longitude in degrees). Records are
// immutable after construction; the window that built them owns them.
type EventRecord struct {
	ID             string
	Date           time.Time
	Label          string
	AstroSignature map[string]float64
	Meta           map[string]string
}

func NewEventRecord(
	id string,
	date time.Time,
	label string,
	signature map[string]float64,
	meta map[string]string,
) (EventRecord, error) {
	id = strings.TrimSpace(id)
	label = strings.TrimSpace(label)
	if id == "" {
		return EventRecord{}, fmt.Errorf("event record id must not be empty")
	}
	if label == "" {
		return EventRecord{}, fmt.Errorf("event record label must not be empty")
	}
	if signature == nil {
		signature = map[string]float64{}
	}
	if meta == nil {
		meta = map[string]string{}
	}
	return EventRecord{
		ID:             id,
		Date:           date,
		Label:          label,
		AstroSignature: signature,
		Meta:           meta,
	}, nil
}

// Category returns the optional category tag used as a scoring tie-break.
func (e EventRecord) Category() string {
	return e.Meta["category"]
}

// CausalLink is a directed, weighted edge between two events. It is an
// internal scoring artifact; it references events by id only.
type CausalLink struct {
	SrcID     string
	DstID     string
	Weight    float64
	DelayDays int
	Evidence  map[string]float64
}

func NewCausalLink(srcID, dstID string, weight float64, delayDays int, evidence map[string]float64) (CausalLink, error) {
	if weight < 0.0 || weight > 1.0 {
		return CausalLink{}, fmt.Errorf("causal link weight %v outside [0,1]", weight)
	}
	if delayDays < 0 {
		return CausalLink{}, fmt.Errorf("causal link delay %d is negative", delayDays)
	}
	if evidence == nil {
		evidence = map[string]float64{}
	}
	return CausalLink{
		SrcID:     srcID,
		DstID:     dstID,
		Weight:    weight,
		DelayDays: delayDays,
		Evidence:  evidence,
	}, nil
}

// MetaPattern is a scored, named relationship discovered between two
// events across two windows.
type MetaPattern struct {
	Name        string
	Score       float64
	Description string
	Nodes       []string
	Links       []string
}

func NewMetaPattern(name string, score float64, description string, nodes []string, links []string) (MetaPattern, error) {
	if score < 0.0 || score > 1.0 {
		return MetaPattern{}, fmt.Errorf("meta pattern score %v outside [0,1]", score)
	}
	return MetaPattern{
		Name:        name,
		Score:       score,
		Description: description,
		Nodes:       nodes,
		Links:       links,
	}, nil
}

// ParseAstroSignature decodes the textual "sun:295.5,moon:120.3" form.
// Malformed pairs are dropped without failing the whole parse; empty
// input decodes to an empty signature.
func ParseAstroSignature(raw string) map[string]float64 {
	signature := map[string]float64{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return signature
	}
	for _, pair := range strings.Split(raw, ",") {
		body, degrees, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		body = strings.TrimSpace(body)
		value, err := strconv.ParseFloat(strings.TrimSpace(degrees), 64)
		if body == "" || err != nil {
			continue
		}
		signature[body] = value
	}
	return signature
}

// DeriveEventID builds a deterministic id for rows that carry none.
func DeriveEventID(label string, date time.Time) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s", strings.TrimSpace(label), date.Format("2006-01-02"))))
	return hex.EncodeToString(sum[:])[:8]
}
