package log

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	defaultPattern    = "%time [%level] %msg%field\n"
	defaultTimeLayout = "2006-01-02 15:04:05.000"
)

type formatter struct {
	pattern string
	time    string
}

// Format renders an entry through the pattern, which may use %time, %level,
// %field and %msg. %field expands to " k=v" pairs sorted by key.
func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	output := f.pattern
	output = strings.Replace(output, "%time", entry.Time.Format(f.time), 1)
	output = strings.Replace(output, "%level", strings.ToUpper(entry.Level.String()), 1)
	output = strings.Replace(output, "%field", buildFields(entry), 1)
	output = strings.Replace(output, "%msg", entry.Message, 1)
	return []byte(output), nil
}

func buildFields(entry *logrus.Entry) string {
	if len(entry.Data) == 0 {
		return ""
	}
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		val, ok := entry.Data[key].(string)
		if !ok {
			val = fmt.Sprint(entry.Data[key])
		}
		sb.WriteString(" " + key + "=" + val)
	}
	return sb.String()
}
