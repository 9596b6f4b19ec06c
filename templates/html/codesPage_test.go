package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Deaquay/shiftcodes/models"
)

func TestRenderCodesPage(t *testing.T) {
	active := []models.CodeRecord{
		{Code: "ABC-123", Reward: "Gold Key"},
		{Code: "DEF-456", Reward: "Skin", Expires: "2025-10-01T04:59:00Z", Source: "https://example.com/post"},
	}
	expired := []models.CodeRecord{
		{Code: "OLD-789", Reward: "1 Key", Expires: "2024-01-01T00:00:00Z"},
	}

	page := RenderCodesPage(active, expired, "2025-01-01 12:00:00 UTC")

	assert.Contains(t, page, "<strong>Last Updated:</strong> 2025-01-01 12:00:00 UTC")
	assert.Contains(t, page, "Active Codes (2)")
	assert.Contains(t, page, "Expired Codes (1)")
	assert.Contains(t, page, `id="code-ABC-123"`)
	assert.Contains(t, page, `id="check-ABC-123"`)
	assert.Contains(t, page, "Permanent")
	assert.Contains(t, page, "10/01/2025")
	assert.Contains(t, page, "01/01/2024")
	assert.Contains(t, page, `<a href='https://example.com/post' target='_blank'>Source</a>`)
	assert.Contains(t, page, "copyCode('DEF-456')")
	assert.Contains(t, page, "localStorage")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(page), "</html>"))
}

func TestRenderCodesPage_OmitsExpiredSectionWhenEmpty(t *testing.T) {
	page := RenderCodesPage([]models.CodeRecord{{Code: "ABC-123"}}, nil, "Unknown")

	assert.NotContains(t, page, "Expired Codes (")
	assert.Contains(t, page, "<strong>Expired Codes:</strong> 0")
}

func TestRenderCodesPage_PlaceholdersForMissingFields(t *testing.T) {
	active := []models.CodeRecord{{Code: "ABC-123"}}
	expired := []models.CodeRecord{{Code: "OLD-1"}}

	page := RenderCodesPage(active, expired, "Unknown")

	// reward and source fall back to an em-dash, expiry to Permanent/Unknown
	assert.Contains(t, page, "&mdash;")
	assert.Contains(t, page, "Permanent")
	assert.Contains(t, page, "<td>Unknown</td>")
}

func TestRenderCodesPage_FreeTextExpiryPassesThrough(t *testing.T) {
	active := []models.CodeRecord{{Code: "ABC-123", Expires: "Sep 30"}}

	page := RenderCodesPage(active, nil, "Unknown")

	assert.Contains(t, page, "<td>Sep 30</td>")
}

func TestRenderCodesPage_EscapesRecordText(t *testing.T) {
	active := []models.CodeRecord{
		{Code: "ABC-123", Reward: `<script>alert("x")</script>`},
	}

	page := RenderCodesPage(active, nil, "Unknown")

	assert.NotContains(t, page, `<script>alert`)
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "Permanent", formatExpiry("", "Permanent"))
	assert.Equal(t, "Unknown", formatExpiry("", "Unknown"))
	assert.Equal(t, "09/26/2025", formatExpiry("2025-09-26T06:59:00Z", "Permanent"))
	assert.Equal(t, "whenever", formatExpiry("whenever", "Permanent"))
}
