package templates

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Deaquay/shiftcodes/models"
)

// RenderCodesPage generates the full HTML document for the codes listing:
// a header with counts and last-updated, the active codes table, the
// expired codes table when non-empty, and the embedded client-side script
// for redeemed tracking, clipboard copy and the force-update button.
// Missing optional fields render as placeholder text instead of failing.
func RenderCodesPage(active, expired []models.CodeRecord, lastUpdated string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>Borderlands 4 SHiFT Codes</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #1a1a1a; color: #fff; }
        .header { background: #2d2d2d; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .status { display: flex; gap: 20px; margin: 10px 0; flex-wrap: wrap; }
        .section { background: #2d2d2d; padding: 15px; border-radius: 8px; margin-bottom: 20px; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 10px; text-align: left; border-bottom: 1px solid #444; }
        th { background: #3d3d3d; }
        .code { font-family: monospace; background: #444; padding: 4px 8px; border-radius: 4px; }
        .active { border-left: 4px solid #4CAF50; }
        .expired { border-left: 4px solid #f44336; opacity: 0.7; }
        .refresh-btn { background: #4CAF50; color: white; border: none; padding: 10px 20px; border-radius: 4px; cursor: pointer; }
        .refresh-btn:hover { background: #45a049; }
        .refresh-btn:disabled { background: #666; cursor: not-allowed; }
        .copy-btn { background: #2196F3; color: white; border: none; padding: 4px 8px; border-radius: 3px; cursor: pointer; font-size: 12px; }
        .copy-btn:hover { background: #1976D2; }
        .copy-btn:disabled { background: #666; }
        .checkbox { margin-right: 8px; }
        .redeemed { opacity: 0.5; text-decoration: line-through; }
        a { color: #64B5F6; }
        .update-info { font-size: 14px; color: #aaa; margin-top: 10px; }
        .code-actions { display: flex; gap: 8px; align-items: center; }
        @media (max-width: 768px) { .status { flex-direction: column; gap: 10px; } }
    </style>
</head>
<body>
    <div class="header">
        <h1>&#127918; Borderlands 4 SHiFT Codes</h1>
        <div class="status">
            <div><strong>Last Updated:</strong> %s</div>
            <div><strong>Active Codes:</strong> %d</div>
            <div><strong>Expired Codes:</strong> %d</div>
        </div>
        <button class="refresh-btn" onclick="updateCodes()">&#128260; Force Update</button>
        <div class="update-info">Updates automatically every hour</div>
    </div>

    <div class="section active">
        <h2>&#128994; Active Codes (%d)</h2>
        <table>
            <tr><th>&#10003;</th><th>Code</th><th>Reward</th><th>Expires</th><th>Actions</th><th>Source</th></tr>
`, html.EscapeString(lastUpdated), len(active), len(expired), len(active)))

	for _, row := range active {
		b.WriteString(renderActiveRow(row))
	}

	b.WriteString(`        </table>
    </div>
`)

	if len(expired) > 0 {
		b.WriteString(fmt.Sprintf(`
    <div class="section expired">
        <h2>&#128308; Expired Codes (%d)</h2>
        <table>
            <tr><th>Code</th><th>Reward</th><th>Expired</th><th>Source</th></tr>
`, len(expired)))
		for _, row := range expired {
			b.WriteString(renderExpiredRow(row))
		}
		b.WriteString(`        </table>
    </div>
`)
	}

	b.WriteString(codesPageScript)
	return b.String()
}

func renderActiveRow(row models.CodeRecord) string {
	code := html.EscapeString(row.Code)
	return fmt.Sprintf(`            <tr id="code-%s" class="code-row">
                <td>
                    <input type="checkbox" class="checkbox" id="check-%s" onchange="toggleRedeemed('%s')">
                </td>
                <td><span class="code">%s</span></td>
                <td>%s</td>
                <td>%s</td>
                <td>
                    <div class="code-actions">
                        <button class="copy-btn" onclick="copyCode('%s')">&#128203; Copy</button>
                    </div>
                </td>
                <td>%s</td>
            </tr>
`, code, code, code, code, orPlaceholder(row.Reward), formatExpiry(row.Expires, "Permanent"), code, sourceLink(row.Source))
}

func renderExpiredRow(row models.CodeRecord) string {
	return fmt.Sprintf(`            <tr>
                <td><span class="code">%s</span></td>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
            </tr>
`, html.EscapeString(row.Code), orPlaceholder(row.Reward), formatExpiry(row.Expires, "Unknown"), sourceLink(row.Source))
}

// formatExpiry renders a parseable expiry timestamp as MM/DD/YYYY. Free-text
// expiries come through as-is and a missing expiry becomes the fallback text.
func formatExpiry(expires, fallback string) string {
	if expires == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, expires)
	if err != nil {
		return html.EscapeString(expires)
	}
	return t.Format("01/02/2006")
}

// orPlaceholder substitutes an em-dash glyph for a missing optional field
func orPlaceholder(s string) string {
	if s == "" {
		return "&mdash;"
	}
	return html.EscapeString(s)
}

func sourceLink(source string) string {
	if source == "" {
		return "&mdash;"
	}
	return fmt.Sprintf(`<a href='%s' target='_blank'>Source</a>`, html.EscapeString(source))
}

const codesPageScript = `
    <script>
        // Load redeemed codes from localStorage
        function loadRedeemedCodes() {
            const redeemed = JSON.parse(localStorage.getItem('redeemedCodes') || '[]');
            redeemed.forEach(code => {
                const checkbox = document.getElementById('check-' + code);
                const row = document.getElementById('code-' + code);
                if (checkbox && row) {
                    checkbox.checked = true;
                    row.classList.add('redeemed');
                }
            });
        }

        // Toggle redeemed status
        function toggleRedeemed(code) {
            const checkbox = document.getElementById('check-' + code);
            const row = document.getElementById('code-' + code);
            const redeemed = JSON.parse(localStorage.getItem('redeemedCodes') || '[]');

            if (checkbox.checked) {
                row.classList.add('redeemed');
                if (!redeemed.includes(code)) {
                    redeemed.push(code);
                }
            } else {
                row.classList.remove('redeemed');
                const index = redeemed.indexOf(code);
                if (index > -1) {
                    redeemed.splice(index, 1);
                }
            }

            localStorage.setItem('redeemedCodes', JSON.stringify(redeemed));
        }

        // Copy code to clipboard
        async function copyCode(code) {
            try {
                await navigator.clipboard.writeText(code);
                // Visual feedback
                const btn = event.target;
                const originalText = btn.textContent;
                btn.textContent = '✅ Copied!';
                btn.disabled = true;

                setTimeout(() => {
                    btn.textContent = originalText;
                    btn.disabled = false;
                }, 2000);
            } catch (err) {
                // Fallback for older browsers
                const textArea = document.createElement('textarea');
                textArea.value = code;
                document.body.appendChild(textArea);
                textArea.select();
                document.execCommand('copy');
                document.body.removeChild(textArea);

                const btn = event.target;
                const originalText = btn.textContent;
                btn.textContent = '✅ Copied!';
                setTimeout(() => {
                    btn.textContent = originalText;
                }, 2000);
            }
        }

        // Force update
        async function updateCodes() {
            const btn = document.querySelector('.refresh-btn');
            btn.textContent = '⏳ Updating...';
            btn.disabled = true;

            try {
                const response = await fetch('/api/update', { method: 'POST' });

                if (response.ok) {
                    setTimeout(() => location.reload(), 3000);
                    btn.textContent = '✅ Update triggered, reloading...';
                } else {
                    btn.textContent = '❌ Update failed';
                    setTimeout(() => {
                        btn.textContent = '🔄 Force Update';
                        btn.disabled = false;
                    }, 3000);
                }
            } catch (error) {
                btn.textContent = '❌ Network error';
                setTimeout(() => {
                    btn.textContent = '🔄 Force Update';
                    btn.disabled = false;
                }, 3000);
            }
        }

        // Load redeemed codes on page load
        document.addEventListener('DOMContentLoaded', loadRedeemedCodes);
    </script>
</body>
</html>
`
