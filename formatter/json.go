package formatter

import (
	"encoding/json"

	"github.com/gnolang/razorconv/converter"
)

// FormatJSON renders results as an indented JSON array.
func FormatJSON(results []converter.Result) ([]byte, error) {
	if results == nil {
		results = []converter.Result{}
	}
	d, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}
