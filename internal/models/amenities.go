package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Amenities is a venue's amenity list, stored as a JSON array.
type Amenities []string

var listSeparators = regexp.MustCompile(`[;,]`)

// ParseAmenities coerces free-form input into a list of amenities.
// A JSON array is taken element-wise and a JSON scalar becomes a single item.
// Anything else has its quotes stripped and is split on commas or semicolons,
// or on whitespace when neither is present.
func ParseAmenities(raw string) Amenities {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amenities{}
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		switch v := decoded.(type) {
		case []any:
			out := make(Amenities, 0, len(v))
			for _, item := range v {
				if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
					out = append(out, s)
				}
			}
			return out
		case nil:
			return Amenities{}
		default:
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return Amenities{s}
			}
			return Amenities{}
		}
	}

	clean := strings.NewReplacer(`"`, "", "'", "").Replace(raw)

	var chunks []string
	if strings.ContainsAny(clean, ",;") {
		chunks = listSeparators.Split(clean, -1)
	} else {
		chunks = strings.Fields(clean)
	}

	out := make(Amenities, 0, len(chunks))
	for _, c := range chunks {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

func (a *Amenities) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*a = Amenities{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Amenities", src)
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("decode amenities: %w", err)
	}
	*a = out
	return nil
}
