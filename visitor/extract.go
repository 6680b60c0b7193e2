package visitor

import (
	"strconv"
	"strings"

	"github.com/blogem/visitlog/logger"
)

// ExtractID returns the entity id embedded in path.
//
// Every ASCII digit in path is concatenated, in order, and the result is
// parsed as a signed 32-bit integer: "/blog/42/view" gives 42 and "a1b2c3"
// gives 123. A path with no digits, or whose digits overflow the range,
// yields false.
func ExtractID(path string) (int, bool) {
	if strings.TrimSpace(path) == "" {
		return 0, false
	}

	var digits strings.Builder
	for i := 0; i < len(path); i++ {
		if c := path[i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}

	if digits.Len() == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(digits.String(), 10, 32)
	if err != nil {
		logger.Get().Debugw("no entity id in request path", "path", path, "error", err)
		return 0, false
	}

	return int(id), true
}
