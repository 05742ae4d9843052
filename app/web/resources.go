package web

const css = `h1 {
  color: #196d30;
  text-align: center;
}

.container {
  width:70vw;
  margin:auto;
  display:block;
}

#apexLineChart {
  height:60vh;
}

#map {
  height:450px;
  width:100%;
}

.info {
  padding:6px 8px;
  background:white;
  border-radius:5px;
  box-shadow:0 0 15px rgba(0,0,0,0.2);
}`

// chartTemplate is JavaScript, not HTML: it is executed with
// text/template and its options are already JSON.
const chartTemplate = `(function () {
  var target = document.getElementById({{printf "%q" .ID}});

  // Clear the chart before redrawing
  target.innerHTML = "";

  var options = {{.Options}};

  var format = function (val) {
    return val.toLocaleString();
  };

  options.yaxis.labels = { formatter: format };
  options.tooltip.y = { formatter: format };

  new ApexCharts(target, options).render();
})();
`

const noChart = `(function () {
  var target = document.getElementById({{printf "%q" .ID}});
  target.innerHTML = "<p>There are no data available.</p>";
})();
`

const dashboard = `<!DOCTYPE html>
<html lang="en">

<head>
  <meta charset="utf-8">
  <title>CDRI Data Hub</title>
  <link rel="stylesheet" href="./style.css">
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
</head>

<body>

  <h1>CDRI Data Hub</h1>

  <div class="container">
    <div id="apexLineChart"></div>
  </div>

  <div class="container">
    <div id="map"></div>
  </div>

</body>

<script src="https://cdn.jsdelivr.net/npm/apexcharts"></script>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="./chart.js"></script>
<script>
  var map = L.map('map').setView([12.5657, 104.9910], 7);

  L.tileLayer('http://{s}.basemaps.cartocdn.com/light_nolabels/{z}/{x}/{y}.png').addTo(map);

  var info = L.control({ position: 'topright' });
  info.onAdd = function () {
    this._div = L.DomUtil.create('div', 'info');
    return this._div;
  };
  info.show = function (i) {
    this._div.innerHTML = '<h4>' + i.header + '</h4>' +
      (i.name ? '<b>' + i.name + '</b><br>' : '') + i.body;
  };
  info.addTo(map);

  fetch('./map.geojson' + window.location.search)
    .then(function (resp) { return resp.json(); })
    .then(function (data) {
      var layer = L.geoJSON(data, {
        style: function (f) { return f.properties.style; },
        onEachFeature: function (f, l) {
          l.on('mouseover', function () {
            l.setStyle({ color: 'black' });
            info.show(f.properties.info);
          });
          l.on('mouseout', function () { layer.resetStyle(l); });
        }
      }).addTo(map);
      map.fitBounds(layer.getBounds());
    });
</script>

</html>`
