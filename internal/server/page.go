package server

import "html/template"

var indexTemplate = template.Must(template.New(`index`).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Bar chart</title>
<style>
body {font: 14px -apple-system, BlinkMacSystemFont, "Helvetica Neue", sans-serif; padding: 50px 80px; color: #555}
section {margin-bottom: 40px}
.chart .column {fill: #f6f6f6}
.chart .bar {fill: #34ace0}
.chart .axis {font-size: 11px}
.chart .axis text {fill: #999}
.chart .axis path, .chart .axis line {fill: none; stroke: none}
.chart .overlay {cursor: crosshair}
table {border-collapse: collapse; width: 450px}
table caption {color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc; text-align: left; padding: 4px 8px}
th {background-color: #516b91; color: white}
</style>
</head>
<body>
<div id="actions">
<form method="post" action="/update?redirect=1"><button type="submit">Animate</button></form>
</div>
{{range .Sections}}
<section id="{{.Name}}">
<h3>{{.Title}}</h3>
<p>{{.Description}} <a href="/charts/{{.Name}}.svg">svg</a></p>
{{.SVG}}
</section>
{{end}}
<section>
<h3>Reference</h3>
<p>Chart reference image.</p>
<iframe src="/reference" width="960" height="480" frameborder="0"></iframe>
</section>
{{.Table}}
</body>
</html>
`))
