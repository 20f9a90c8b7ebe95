package gitio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/codeamnesia/codeamnesia/internal/identity"
)

// CommitMeta is the parsed metadata record for one change.
type CommitMeta struct {
	Author  identity.Identity
	Time    time.Time
	Message string
}

// ParseMetaRecord parses a name|email|unixTimestamp|message record. The
// message is everything after the third delimiter, so embedded delimiters
// survive.
func ParseMetaRecord(record string) (CommitMeta, error) {
	record = strings.TrimSpace(record)
	parts := strings.SplitN(record, metaDelimiter, 4)
	if len(parts) < 3 {
		return CommitMeta{}, fmt.Errorf("malformed metadata record %q", record)
	}

	unix, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return CommitMeta{}, fmt.Errorf("malformed timestamp in record %q: %w", record, err)
	}

	message := ""
	if len(parts) == 4 {
		message = parts[3]
	}

	return CommitMeta{
		Author:  identity.Identity{Name: parts[0], Email: parts[1]},
		Time:    time.Unix(unix, 0).UTC(),
		Message: message,
	}, nil
}

// parseIdentityRecord parses a name|email line from the author listing.
func parseIdentityRecord(line string) (identity.Identity, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return identity.Identity{}, false
	}
	parts := strings.SplitN(line, metaDelimiter, 2)
	if len(parts) != 2 {
		return identity.Identity{}, false
	}
	return identity.Identity{Name: parts[0], Email: parts[1]}, true
}
