package assert

import (
	"fmt"

	"github.com/cso-genova/casa-listing-explorer/internal/log"
)

func assert(msg string, data ...any) {
	fields := make(map[string]any, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		fields[fmt.Sprint(data[i])] = data[i+1]
	}

	log.GetLogger().WithFields(fields).Fatal(msg)
}

// Assert halts the process when an invariant does not hold. Data is a
// flat list of field name / value pairs for the log entry.
func Assert(truth bool, msg string, data ...any) {
	if !truth {
		assert(msg, data...)
	}
}

func NoError(err error, msg string, data ...any) {
	if err != nil {
		data = append(data, "error", err)
		assert(msg, data...)
	}
}
