package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"sentimap/internal/model"
)

type bootstrap struct {
	Source     string                 `json:"source"`
	Generation string                 `json:"generation"`
	Error      string                 `json:"error,omitempty"`
	Mode       string                 `json:"mode"`
	Modes      []string               `json:"modes"`
	Records    int                    `json:"records"`
	Totals     model.CountryAggregate `json:"totals"`
	Fills      []fillEntry            `json:"fills"`
}

var indexTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

// handleIndex renders the map page with the initial state inlined, so
// the first paint needs no API round trip.
func (s *Server) handleIndex(c echo.Context) error {
	snap := s.current()

	boot := bootstrap{
		Source:     s.source.String(),
		Generation: snap.generation.String(),
		Mode:       model.ModeOverall.String(),
		Records:    len(snap.records),
		Fills:      s.fillEntries(snap, model.ModeOverall),
	}
	for _, m := range model.Modes() {
		boot.Modes = append(boot.Modes, m.String())
	}
	for _, agg := range snap.aggs {
		boot.Totals.Merge(agg)
	}
	if snap.loadErr != nil {
		boot.Error = snap.loadErr.Error()
	}

	raw, err := json.Marshal(boot)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return indexTemplate.Execute(c.Response(), map[string]any{
		"Bootstrap": template.JS(raw),
	})
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Sentiment Map</title>
  <script src="https://d3js.org/d3.v7.min.js"></script>
  <script src="https://cdn.jsdelivr.net/npm/topojson-client@3"></script>
  <style>
    body { font-family: -apple-system, 'Segoe UI', sans-serif; margin: 0; background: #fafafa; color: #222; }
    header { padding: 10px 16px; background: #263238; color: #eee; display: flex; align-items: center; gap: 16px; }
    header h1 { font-size: 16px; margin: 0; }
    header .meta { font-size: 12px; color: #b0bec5; }
    #controls { padding: 8px 16px; display: flex; gap: 8px; align-items: center; flex-wrap: wrap; }
    #controls button { padding: 4px 10px; border: 1px solid #90a4ae; background: #fff; border-radius: 3px; cursor: pointer; }
    #controls button.active { background: #455a64; color: #fff; border-color: #455a64; }
    #layout { display: flex; }
    #map { flex: 1; }
    #detail { width: 280px; padding: 12px 16px; font-size: 13px; border-left: 1px solid #ddd; background: #fff; min-height: 480px; }
    #detail h2 { font-size: 14px; margin: 0 0 8px; }
    #detail table { border-collapse: collapse; width: 100%; }
    #detail td { padding: 2px 4px; border-bottom: 1px solid #eee; }
    .country { stroke: #fff; stroke-width: 0.5; cursor: pointer; }
    .country.selected { stroke: #000; stroke-width: 1.5; }
    #error { background: #ffcdd2; color: #b71c1c; padding: 8px 16px; display: none; }
    #legend { padding: 6px 16px; font-size: 12px; display: flex; gap: 12px; flex-wrap: wrap; }
    .swatch { display: inline-block; width: 12px; height: 12px; margin-right: 4px; vertical-align: -2px; }
  </style>
</head>
<body>
  <header>
    <h1>Sentiment Map</h1>
    <span class="meta" id="meta"></span>
  </header>
  <div id="error"></div>
  <div id="controls">
    <span>Mode:</span>
    <span id="modes"></span>
    <button id="reset">Reset view</button>
    <button id="reload">Reload data</button>
  </div>
  <div id="layout">
    <svg id="map" viewBox="0 0 960 520"></svg>
    <div id="detail"><h2>Hover a country</h2></div>
  </div>
  <div id="legend"></div>
  <script>
    var BOOT = {{.Bootstrap}};
    var HOVER_DELAY = 100;

    // world-atlas names that differ from the catalog's.
    var ALIASES = {
      "United States of America": "United States",
      "Russian Federation": "Russia",
      "Republic of Korea": "South Korea",
      "Korea, Republic of": "South Korea",
      "United Republic of Tanzania": "Tanzania",
      "Viet Nam": "Vietnam",
      "Czech Republic": "Czechia",
      "Türkiye": "Turkey"
    };

    var svg = d3.select("#map");
    var g = svg.append("g");
    var path = d3.geoPath(d3.geoNaturalEarth1().fitSize([960, 520], {type: "Sphere"}));
    var zoom = d3.zoom().scaleExtent([1, 8]).on("zoom", function(ev) {
      g.attr("transform", ev.transform);
    });
    svg.call(zoom);

    var state = { fills: {}, selected: null, mode: BOOT.mode, hoverTimer: null };

    function indexFills(entries) {
      state.fills = {};
      entries.forEach(function(f) { state.fills[f.name] = f; });
    }

    function canonical(name) { return ALIASES[name] || name; }

    function paint() {
      g.selectAll("path.country")
        .attr("fill", function(d) {
          var f = state.fills[canonical(d.properties.name)];
          return f ? f.color : "#eeeeee";
        })
        .classed("selected", function(d) {
          return state.selected === canonical(d.properties.name);
        });
    }

    function showDetail(f) {
      if (!f) { d3.select("#detail").html("<h2>Hover a country</h2>"); return; }
      fetch("/api/country/" + f.code).then(function(r) { return r.json(); }).then(function(c) {
        var a = c.aggregate || {positive: 0, neutral: 0, negative: 0, total: 0};
        var html = "<h2>" + c.name + " (" + c.code + ")</h2>" +
          "<p>" + c.continent + "</p>" +
          "<table><tr><td>Positive</td><td>" + a.positive + "</td></tr>" +
          "<tr><td>Neutral</td><td>" + a.neutral + "</td></tr>" +
          "<tr><td>Negative</td><td>" + a.negative + "</td></tr>" +
          "<tr><td>Total</td><td>" + a.total + "</td></tr></table>";
        if (a.total === 0) { html += "<p>No records.</p>"; }
        d3.select("#detail").html(html);
      });
    }

    function hoverEnter(f) {
      if (state.hoverTimer) { clearTimeout(state.hoverTimer); }
      state.hoverTimer = setTimeout(function() {
        state.hoverTimer = null;
        showDetail(f);
      }, HOVER_DELAY);
    }

    function hoverOut() {
      if (state.hoverTimer) { clearTimeout(state.hoverTimer); state.hoverTimer = null; }
      showDetail(null);
    }

    function zoomToContinent(continent, features) {
      var members = features.filter(function(d) {
        var f = state.fills[canonical(d.properties.name)];
        return f && f.continent === continent;
      });
      if (!members.length) { return; }
      var b = [[Infinity, Infinity], [-Infinity, -Infinity]];
      members.forEach(function(d) {
        var bb = path.bounds(d);
        b[0][0] = Math.min(b[0][0], bb[0][0]);
        b[0][1] = Math.min(b[0][1], bb[0][1]);
        b[1][0] = Math.max(b[1][0], bb[1][0]);
        b[1][1] = Math.max(b[1][1], bb[1][1]);
      });
      var dx = b[1][0] - b[0][0], dy = b[1][1] - b[0][1];
      var cx = (b[0][0] + b[1][0]) / 2, cy = (b[0][1] + b[1][1]) / 2;
      var k = Math.min(8, 0.9 / Math.max(dx / 960, dy / 520));
      svg.transition().duration(600).call(
        zoom.transform,
        d3.zoomIdentity.translate(480 - k * cx, 260 - k * cy).scale(k)
      );
    }

    function setMode(mode) {
      fetch("/api/fills?mode=" + mode).then(function(r) { return r.json(); }).then(function(resp) {
        state.mode = resp.mode;
        indexFills(resp.fills);
        paint();
        d3.selectAll("#modes button").classed("active", function() {
          return this.dataset.mode === state.mode;
        });
      });
    }

    BOOT.modes.forEach(function(m) {
      d3.select("#modes").append("button")
        .attr("data-mode", m)
        .classed("active", m === BOOT.mode)
        .text(m)
        .on("click", function() { setMode(m); });
    });

    d3.select("#meta").text(BOOT.source + " · " + BOOT.records + " records · " + BOOT.generation.slice(0, 8));
    if (BOOT.error) {
      d3.select("#error").style("display", "block").text("Dataset failed to load: " + BOOT.error + " (use Reload data to retry)");
    }

    var LEGEND = [
      ["#1a9850", "strong positive"], ["#91cf60", "weak positive"],
      ["#4575b4", "strong neutral"], ["#91bfdb", "weak neutral"],
      ["#d73027", "strong negative"], ["#fc8d59", "weak negative"],
      ["#9e9e9e", "mixed"], ["#d4d4d4", "no data"]
    ];
    LEGEND.forEach(function(l) {
      d3.select("#legend").append("span")
        .html("<span class='swatch' style='background:" + l[0] + "'></span>" + l[1]);
    });

    d3.select("#reset").on("click", function() {
      state.selected = null;
      paint();
      svg.transition().duration(400).call(zoom.transform, d3.zoomIdentity);
    });

    d3.select("#reload").on("click", function() {
      fetch("/api/reload", {method: "POST"}).then(function() { location.reload(); });
    });

    indexFills(BOOT.fills);

    d3.json("https://cdn.jsdelivr.net/npm/world-atlas@2/countries-110m.json").then(function(world) {
      var features = topojson.feature(world, world.objects.countries).features;
      g.selectAll("path.country")
        .data(features)
        .enter().append("path")
        .attr("class", "country")
        .attr("d", path)
        .on("mouseenter", function(ev, d) {
          hoverEnter(state.fills[canonical(d.properties.name)]);
        })
        .on("mouseleave", hoverOut)
        .on("click", function(ev, d) {
          var f = state.fills[canonical(d.properties.name)];
          if (!f) { return; }
          if (state.selected === f.name) {
            state.selected = null;
          } else {
            state.selected = f.name;
            zoomToContinent(f.continent, features);
          }
          paint();
        });
      paint();
    });
  </script>
</body>
</html>
`
