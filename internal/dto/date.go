package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day serialized as "2006-01-02" on the API.
// datatypes.Date handles the column side; its JSON form goes through
// time.Time's RFC3339 codec, which would reject the plain ISO dates
// this API exchanges, so transport uses this wrapper instead.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	*d = Date(t)
	return nil
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}
