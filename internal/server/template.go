package server

import "html/template"

type dashboardPage struct {
	Database      string
	Count         int
	AvgPrice      string
	AvgPricePerMq string

	// pre-formatted so large values never render in exponent notation
	PriceMin string
	PriceMax string
	SizeMin  string
	SizeMax  string

	SpecPriceMin string
	SpecPriceMax string
	SpecSizeMin  string
	SpecSizeMax  string

	Rooms         []roomOption
	Listings      []listingRow
	FilteredCount int

	// re-encoded via url.Values.Encode, safe to emit verbatim
	CSVQuery template.URL
}

type roomOption struct {
	Value   int
	Checked bool
}

type listingRow struct {
	Name        string
	URL         string
	Description string
	Rooms       string
	Price       string
	Size        string
	PricePerMq  string
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Casa Genova Listing Explorer</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { margin-bottom: 0.2rem; }
.lead { color: #555; margin-top: 0; }
.metrics { display: flex; gap: 2rem; margin: 1.5rem 0; }
.metric { border: 1px solid #ddd; border-radius: 6px; padding: 1rem 2rem; }
.metric .value { font-size: 1.6rem; font-weight: bold; }
.metric .label { color: #777; font-size: 0.85rem; }
form { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin-bottom: 1.5rem; }
fieldset { border: none; padding: 0.3rem 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border-bottom: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
.caption { color: #777; margin: 0.5rem 0; }
.info { background: #eef6ff; border: 1px solid #bcd9f5; padding: 1rem; border-radius: 6px; }
.download { display: inline-block; margin: 1rem 0; }
</style>
</head>
<body>
<h1>Casa Genova Listing Explorer</h1>
<p class="lead">Listings from the <code>{{.Database}}</code> view with interactive summaries and filters.</p>

<h2>Market snapshot</h2>
<div class="metrics">
  <div class="metric"><div class="value">{{.Count}}</div><div class="label">Listings</div></div>
  <div class="metric"><div class="value">{{.AvgPrice}}</div><div class="label">Avg price (EUR)</div></div>
  <div class="metric"><div class="value">{{.AvgPricePerMq}}</div><div class="label">Avg price per m&sup2;</div></div>
</div>

<h2>Filter listings</h2>
<form method="get" action="/">
  <fieldset>
    <strong>Number of rooms</strong><br>
    {{range .Rooms}}<label><input type="checkbox" name="rooms" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Value}}</label> {{end}}
  </fieldset>
  <fieldset>
    <strong>Price range (EUR)</strong><br>
    <input type="number" name="price_min" value="{{.SpecPriceMin}}" min="{{.PriceMin}}" max="{{.PriceMax}}" step="1000">
    &ndash;
    <input type="number" name="price_max" value="{{.SpecPriceMax}}" min="{{.PriceMin}}" max="{{.PriceMax}}" step="1000">
  </fieldset>
  <fieldset>
    <strong>Size range (m&sup2;)</strong><br>
    <input type="number" name="size_min" value="{{.SpecSizeMin}}" min="{{.SizeMin}}" max="{{.SizeMax}}" step="1">
    &ndash;
    <input type="number" name="size_max" value="{{.SpecSizeMax}}" min="{{.SizeMin}}" max="{{.SizeMax}}" step="1">
  </fieldset>
  <button type="submit">Apply filters</button>
</form>

<p class="caption">Showing {{.FilteredCount}} of {{.Count}} listings.</p>

{{if .Listings}}
<table>
  <thead><tr>
    <th>Name</th><th>URL</th><th>Description</th><th>Rooms</th>
    <th>Price (EUR)</th><th>Size (m&sup2;)</th><th>Price per m&sup2; (EUR)</th>
  </tr></thead>
  <tbody>
  {{range .Listings}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">listing</a>{{end}}</td>
      <td>{{.Description}}</td>
      <td>{{.Rooms}}</td>
      <td>{{.Price}}</td>
      <td>{{.Size}}</td>
      <td>{{.PricePerMq}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
<a class="download" href="/listings.csv{{if .CSVQuery}}?{{.CSVQuery}}{{end}}">Download filtered listings (CSV)</a>
{{else}}
<p class="info">No listings match the selected filters. Adjust the ranges or room selection.</p>
{{end}}
</body>
</html>
`))

var messageTemplate = template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Casa Genova Listing Explorer</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.error { background: #fdecea; border: 1px solid #f5c6cb; padding: 1rem; border-radius: 6px; }
.warning { background: #fff8e1; border: 1px solid #f5e1a4; padding: 1rem; border-radius: 6px; }
</style>
</head>
<body>
<h1>Casa Genova Listing Explorer</h1>
<p class="{{.Kind}}">{{.Text}}</p>
</body>
</html>
`))
