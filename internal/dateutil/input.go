package dateutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var inputParser *when.Parser

func init() {
	inputParser = when.New(nil)
	inputParser.Add(en.All...)
	inputParser.Add(common.All...)
}

// ParseInput interprets a user-typed date. Empty input means today.
// It accepts the ISO layout directly, and falls back to natural
// language ("tomorrow", "next monday") for anything else.
func ParseInput(text string, now time.Time) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return now.Format(ISODate), nil
	}
	if t, err := time.Parse(ISODate, text); err == nil {
		return t.Format(ISODate), nil
	}
	r, err := inputParser.Parse(text, now)
	if err != nil || r == nil {
		return "", fmt.Errorf("unrecognized date %q (use YYYY-MM-DD)", text)
	}
	return r.Time.Format(ISODate), nil
}
