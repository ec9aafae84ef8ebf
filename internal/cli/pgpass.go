package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpassPassword searches the .pgpass file for an entry matching the
// connection's host, port, database and username. A literal "*" in any file
// field matches anything, per the PostgreSQL convention. Returns the empty
// string when no entry matches.
func lookupPgpassPassword(cfg *rsscripter.ConnectionConfig) string {
	path := pgpassPath()
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	port := fmt.Sprintf("%d", cfg.Port)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}
		if pgpassFieldMatches(fields[0], cfg.Host) &&
			pgpassFieldMatches(fields[1], port) &&
			pgpassFieldMatches(fields[2], cfg.Database) &&
			pgpassFieldMatches(fields[3], cfg.Username) {
			return fields[4]
		}
	}
	return ""
}

// splitPgpassLine splits a .pgpass line on unescaped colons and unescapes
// each field (backslash escapes colons and backslashes).
func splitPgpassLine(line string) []string {
	var fields []string
	var current strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

func pgpassFieldMatches(field, value string) bool {
	return field == "*" || field == value
}
