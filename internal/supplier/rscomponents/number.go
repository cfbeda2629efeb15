package rscomponents

import (
	"bytes"
	"strconv"
	"strings"
)

// jsonNumberish accepts 12, "12" or "" and reports 0 for anything unparsable.
type jsonNumberish int

func (n *jsonNumberish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), `"`)
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		*n = 0
		return nil
	}
	*n = jsonNumberish(v)
	return nil
}
