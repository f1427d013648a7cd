package page

import (
	"fmt"
	"html"
	"strings"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
	"github.com/nhdewitt/digit-matrix/internal/status"
)

const ContentType = "text/html"

const layout = `<!DOCTYPE html>
<html>
<head>
	<title>Digit Matrix Control</title>
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<style>
		body { font-family: Arial, sans-serif; margin: 20px; background-color: #1a1a1a; color: white; }
		.container { max-width: 800px; margin: 0 auto; }
		.status { background: #333; padding: 15px; border-radius: 8px; margin: 20px 0; }
		.digit-grid { display: grid; grid-template-columns: repeat(5, 1fr); gap: 10px; margin: 20px 0; }
		.digit-btn { padding: 20px; font-size: 24px; font-weight: bold; border-radius: 8px; text-decoration: none; display: block; text-align: center; background-color: #4CAF50; color: white; }
		.color-btn { padding: 15px; margin: 5px; border-radius: 5px; text-decoration: none; display: inline-block; color: white; font-weight: bold; }
		.red { background-color: #f44336; }
		.green { background-color: #4CAF50; }
		.blue { background-color: #2196F3; }
		.white { background-color: #757575; }
		h1 { color: #4CAF50; }
		h3 { color: #81C784; }
	</style>
</head>
<body>
	<div class="container">
		<h1>32x32 Digit Matrix</h1>
		<p>LED matrix control from the tracker bridge or this page.</p>

		<div class="status">
			<h3>Status</h3>
			<p><strong>Last Number Displayed:</strong> %s</p>
			<p><strong>Server Uptime:</strong> %d ms</p>
		</div>

		<h3>Manual Control</h3>
		<div class="digit-grid">
%s		</div>

		<h3>Color Examples</h3>
		<a href="/?num=5&color=red" class="color-btn red">Red 5</a>
		<a href="/?num=3&color=green" class="color-btn green">Green 3</a>
		<a href="/?num=7&color=blue" class="color-btn blue">Blue 7</a>
		<a href="/?num=1&color=white" class="color-btn white">White 1</a>

		<h3>API Usage</h3>
		<ul>
			<li><code>/?num=5</code> - white "5"</li>
			<li><code>/?num=3&color=red</code> - red "3"</li>
			<li><code>/?num=7&color=green</code> - green "7"</li>
		</ul>
		<p><strong>Supported colors:</strong> %s</p>
	</div>
</body>
</html>
`

// Render builds the control page for snap.
func Render(snap status.Snapshot) []byte {
	var buttons strings.Builder
	for d := 0; d <= 9; d++ {
		fmt.Fprintf(&buttons, "\t\t\t<a href=\"/?num=%d\" class=\"digit-btn\">%d</a>\n", d, d)
	}

	return fmt.Appendf(nil, layout,
		html.EscapeString(snap.Last),
		snap.UptimeMillis(),
		buttons.String(),
		strings.Join(glyph.ColorNames, ", "),
	)
}
