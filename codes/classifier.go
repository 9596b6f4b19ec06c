// Package codes implements the active/expired partitioning of SHiFT code
// records. Classification is a pure function of the records and a reference
// instant so it can be recomputed on every request.
package codes

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/models"
)

// staleMonthTokens flag expiry strings that failed to parse but still look
// like a past date from the game's launch window. Crude on purpose: the
// scraper occasionally emits free-text dates such as "Sep 26" and we would
// rather shelve those codes than show them as redeemable.
var staleMonthTokens = []string{"sep", "september"}

// Classification partitions a snapshot's codes into active and expired,
// preserving the snapshot's original relative order within each bucket.
type Classification struct {
	Active  []models.CodeRecord `json:"active"`
	Expired []models.CodeRecord `json:"expired"`
}

// Classify partitions records against the reference instant now. A code with
// no expiry is treated as permanent and stays active. A parseable expiry is
// compared inclusively: a code expiring exactly at now counts as expired. An
// unparseable expiry falls back to the stale-month heuristic and is logged;
// it never fails the batch.
func Classify(records []models.CodeRecord, now time.Time) Classification {
	c := Classification{
		Active:  []models.CodeRecord{},
		Expired: []models.CodeRecord{},
	}

	for _, record := range records {
		if isExpired(record, now) {
			c.Expired = append(c.Expired, record)
		} else {
			c.Active = append(c.Active, record)
		}
	}
	return c
}

func isExpired(record models.CodeRecord, now time.Time) bool {
	if record.Expires == "" {
		return false
	}

	expires, err := time.Parse(time.RFC3339, record.Expires)
	if err != nil {
		zap.S().Warnw("failed to parse code expiry, using stale-month fallback",
			"code", record.Code,
			"expires", record.Expires,
		)
		return looksStale(record.Expires)
	}

	return !expires.After(now)
}

// looksStale reports whether a free-text expiry contains a known stale-month
// token alongside the day "26"
func looksStale(expires string) bool {
	lower := strings.ToLower(expires)
	for _, token := range staleMonthTokens {
		if strings.Contains(lower, token) && strings.Contains(lower, "26") {
			return true
		}
	}
	return false
}
