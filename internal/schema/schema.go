package schema

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// Embedded is the schema compiled into the binary.
//
//go:embed schema.sql
var Embedded string

// Tables lists every table created by the embedded schema, in foreign-key-safe
// deletion order.
var Tables = []string{
	"users",
	"care_plans",
	"scenarios",
	"organizations",
}

// Loader resolves a schema location to its text.
type Loader struct {
	// S3 is used for s3://bucket/key locations. It may be nil when no such
	// location is configured.
	S3 ObjectGetter
}

// Load returns the schema text at location. An empty location or "embedded"
// selects the schema compiled into the binary, "s3://bucket/key" fetches an
// object, and anything else is read as a local file.
func (l Loader) Load(ctx context.Context, location string) (string, error) {
	switch {
	case location == "" || location == "embedded":
		return Embedded, nil
	case strings.HasPrefix(location, "s3://"):
		return l.loadS3(ctx, location)
	default:
		b, err := os.ReadFile(location) //nolint:gosec // operator-supplied path
		if err != nil {
			return "", fmt.Errorf("read schema file: %w", err)
		}
		return string(b), nil
	}
}

// Split splits a script into statements at every semicolon outside a quoted
// string. "--" comments, whole-line or trailing, are dropped along with blank
// lines, and empty fragments are discarded. A final statement without a
// terminator is kept.
func Split(script string) []string {
	scanner := bufio.NewScanner(strings.NewReader(script))
	scanner.Buffer(make([]byte, 0, 64*1024), len(script)+1)

	var stmts []string
	var current strings.Builder
	var quote byte // open quote character carried across lines, 0 if none

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" && stmt != ";" {
			stmts = append(stmts, stmt)
		}
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		start := 0
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '\'' || c == '"':
				quote = c
			case c == '-' && i+1 < len(line) && line[i+1] == '-':
				line = line[:i]
			case c == ';':
				current.WriteString(line[start : i+1])
				flush()
				start = i + 1
			}
		}

		rest := line[start:]
		if strings.TrimSpace(rest) == "" && quote == 0 {
			continue
		}
		current.WriteString(rest)
		current.WriteByte('\n')
	}
	flush()

	return stmts
}
