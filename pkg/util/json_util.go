package util

import (
	"bytes"

	"github.com/goccy/go-json"
)

// PrettyJSON indents raw JSON with two spaces. Input that is not valid JSON is returned unchanged.
func PrettyJSON(raw []byte) string {
	pretty := bytes.Buffer{}
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return string(raw)
	}
	return pretty.String()
}
