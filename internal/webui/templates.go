// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"html/template"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

var funcMap = template.FuncMap{
	// cell renders empty text as a dash placeholder.
	"cell": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
	"token": func(t types.TriState) string { return t.Token() },
	"badgeClass": func(t types.TriState) string {
		switch t {
		case types.TriYes:
			return "badge badge--y"
		case types.TriNo:
			return "badge badge--n"
		default:
			return "badge badge--dash"
		}
	},
	"sym": func(open bool) string {
		if open {
			return "−"
		}
		return "+"
	},
}

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Paper Explorer</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:16px;align-items:center;flex-wrap:wrap}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px;margin-right:8px}
nav .status{margin-left:auto;color:#8b949e}
main{padding:16px;display:flex;gap:16px;align-items:flex-start}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
.filters{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px;min-width:240px;max-width:260px;flex-shrink:0}
.filters label{display:block;margin:4px 0;color:#c9d1d9}
.filters input[type=text],.filters select{width:100%;background:#0d1117;color:#c9d1d9;border:1px solid #30363d;border-radius:4px;padding:5px 8px;margin:2px 0 8px;font:inherit}
.filters .facet-list{max-height:240px;overflow-y:auto;border:1px solid #21262d;border-radius:4px;padding:4px 8px;margin-bottom:8px}
.filters button{background:#1f6feb;border:none;border-radius:4px;color:#fff;padding:6px 12px;font:inherit;cursor:pointer}
.filters .aux{display:flex;gap:10px;margin-top:8px}
.content{flex:1;min-width:0}
.chips{display:flex;gap:6px;flex-wrap:wrap;margin-bottom:10px}
.chip{background:#21262d;border:1px solid #30363d;border-radius:12px;padding:2px 10px;font-size:12px}
.chip .chip-label{color:#8b949e}
.chip a{color:#f87171;margin-left:6px;font-weight:700}
.table-wrap{overflow-x:auto;border:1px solid #30363d;border-radius:6px;background:#161b22}
table{width:100%;border-collapse:collapse;font-size:12px;min-width:1600px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase;letter-spacing:.05em;white-space:nowrap}
td{padding:5px 10px;border-bottom:1px solid #21262d;vertical-align:top}
tr:hover td{background:#1c2128}
.badge{display:inline-block;min-width:20px;text-align:center;padding:1px 6px;border-radius:10px;font-size:10px;font-weight:600}
.badge--y{background:#1f6f3a;color:#56d364}
.badge--n{background:#6f1f2a;color:#f87171}
.badge--dash{background:#21262d;color:#8b949e}
.expander{color:#58a6ff;font-weight:700}
.details td{background:#0d1117}
.detail-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:10px;padding:8px}
.detail-box{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:10px}
.detail-box h4{font-size:11px;color:#8b949e;text-transform:uppercase;letter-spacing:.05em;margin-bottom:4px}
.pill{display:inline-block;background:#21262d;border:1px solid #30363d;border-radius:4px;padding:1px 6px;font-size:11px;margin:2px 2px 0 0;color:#8b949e}
.cards{display:none}
.err{color:#ffb4c0;padding:14px}
@media (max-width: 980px){
  .table-wrap{display:none}
  .cards{display:grid;gap:12px}
  main{flex-direction:column}
  .filters{max-width:none;width:100%}
}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px}
.card-top{display:flex;justify-content:space-between;gap:8px}
.card-title{font-weight:700;color:#f0f6fc}
.card-sub{color:#8b949e;font-size:12px}
.kv{margin-top:6px}
.kv .k{font-size:11px;color:#8b949e;text-transform:uppercase;letter-spacing:.05em}
</style>
</head>
<body>
<nav>
  <span class="brand">paper-explorer</span>
  <a href="/">Explore</a>
  <a href="{{.ExportURL}}">Export CSV</a>
  <a href="/clear">Clear all</a>
  <span class="status">{{.Status}}</span>
</nav>
<main>
{{template "content" .}}
</main>
<script>
(function(){
  var wrap=document.querySelector('.table-wrap');
  if(wrap){
    var key='paperExplorer.scrollLeft';
    var saved=sessionStorage.getItem(key);
    if(saved){wrap.scrollLeft=parseInt(saved,10);}
    wrap.addEventListener('scroll',function(){sessionStorage.setItem(key,wrap.scrollLeft);});
  }
  document.querySelectorAll('form.auto select, form.auto input[type=checkbox]').forEach(function(el){
    el.addEventListener('change',function(){el.form.submit();});
  });
})();
</script>
</body>
</html>{{end}}`

// ── Explorer page ─────────────────────────────────────────────────────────────

const tmplExplorer = `
{{define "content"}}
<form class="filters auto" method="get" action="/">
  <h2>Search</h2>
  <input type="text" name="q" value="{{.State.Query}}" placeholder="Search all fields…">

  <h2>Situational Awareness</h2>
  <label><input type="checkbox" name="sa1" {{if .State.SA1}}checked{{end}}> SA1 — perception</label>
  <label><input type="checkbox" name="sa2" {{if .State.SA2}}checked{{end}}> SA2 — comprehension</label>
  <label><input type="checkbox" name="sa3" {{if .State.SA3}}checked{{end}}> SA3 — projection</label>

  <h2>Training</h2>
  <select name="training">
    <option value="all" {{if eq .TrainingKey "all"}}selected{{end}}>All</option>
    <option value="yes" {{if eq .TrainingKey "yes"}}selected{{end}}>With training</option>
    <option value="no" {{if eq .TrainingKey "no"}}selected{{end}}>Without training</option>
  </select>

  <h2>Model-Based Support</h2>
  <select name="model">
    <option value="all" {{if eq .ModelKey "all"}}selected{{end}}>All</option>
    {{range .ModelCategories}}<option value="{{.}}" {{if eq $.ModelKey .}}selected{{end}}>{{.}}</option>
    {{end}}
  </select>

  <h2>Scenario / Domain</h2>
  <div class="facet-list">
    {{range .Facets}}<label><input type="checkbox" name="sc" value="{{.Name}}" {{if .Selected}}checked{{end}}> {{.Name}}</label>
    {{end}}
  </div>

  <h2>Sort</h2>
  <select name="sort">
    <option value="year_desc" {{if eq .SortKey "year_desc"}}selected{{end}}>Year, newest first</option>
    <option value="year_asc" {{if eq .SortKey "year_asc"}}selected{{end}}>Year, oldest first</option>
    <option value="title_asc" {{if eq .SortKey "title_asc"}}selected{{end}}>Title A→Z</option>
    <option value="title_desc" {{if eq .SortKey "title_desc"}}selected{{end}}>Title Z→A</option>
  </select>

  <button type="submit">Apply</button>
</form>

<div class="content">
  {{if .Err}}<div class="err">{{.Err}}</div>{{end}}

  {{if .Chips}}
  <div class="chips">
    {{range .Chips}}<span class="chip"><span class="chip-label">{{.Label}}:</span> {{.Value}}<a href="{{.RemoveURL}}" aria-label="Remove">×</a></span>
    {{end}}
  </div>
  {{end}}

  <div class="table-wrap">
    <table>
      <thead>
        <tr>
          <th></th>
          <th>Paper (Title — Author, Year)</th>
          <th>Scenario/Domain</th>
          <th>Swarm Type</th>
          <th>Human Role</th>
          <th>SA1</th>
          <th>SA2</th>
          <th>SA3</th>
          <th>Training</th>
          <th>Training Type</th>
          <th>Model-Based</th>
          <th>Interface/Visualization</th>
          <th>Evaluation Metrics</th>
          <th>Key Contribution</th>
          <th>Main Limitation</th>
          <th>Relevance to PhD</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td><a class="expander" href="{{.ToggleURL}}" aria-label="Toggle details">{{sym .Open}}</a></td>
          <td>{{cell .Paper}}</td>
          <td>{{cell .ScenarioDomain}}</td>
          <td>{{cell .SwarmType}}</td>
          <td>{{cell .HumanRole}}</td>
          <td><span class="{{badgeClass .SA1}}">{{token .SA1}}</span></td>
          <td><span class="{{badgeClass .SA2}}">{{token .SA2}}</span></td>
          <td><span class="{{badgeClass .SA3}}">{{token .SA3}}</span></td>
          <td><span class="{{badgeClass .TrainingIncluded}}">{{token .TrainingIncluded}}</span></td>
          <td>{{cell .TrainingType}}</td>
          <td>{{cell .ModelBasedSupport}}</td>
          <td>{{cell .InterfaceVisualization}}</td>
          <td>{{cell .EvaluationMetricsRaw}}</td>
          <td>{{cell .KeyContribution}}</td>
          <td>{{cell .MainLimitation}}</td>
          <td>{{cell .RelevanceToPhD}}</td>
        </tr>
        {{if .Open}}
        <tr class="details">
          <td colspan="16">
            <div class="detail-grid">
              <div class="detail-box"><h4>Key contribution</h4><p>{{cell .KeyContribution}}</p></div>
              <div class="detail-box"><h4>Main limitation</h4><p>{{cell .MainLimitation}}</p></div>
              <div class="detail-box"><h4>Evaluation metrics</h4><p>{{cell .EvaluationMetricsRaw}}</p>
                {{if .EvaluationMetrics}}{{range .EvaluationMetrics}}<span class="pill">{{.}}</span>{{end}}{{else}}<span class="pill">—</span>{{end}}
              </div>
              <div class="detail-box"><h4>Interface / visualization</h4><p>{{cell .InterfaceVisualization}}</p></div>
            </div>
          </td>
        </tr>
        {{end}}
        {{end}}
      </tbody>
    </table>
  </div>

  <div class="cards">
    {{range .Rows}}
    <article class="card">
      <div class="card-top">
        <div>
          <div class="card-title">{{cell .Paper}}</div>
          <div class="card-sub">{{cell .ScenarioDomain}}</div>
        </div>
        <a class="expander" href="{{.ToggleURL}}" aria-label="Toggle details">{{sym .Open}}</a>
      </div>
      <div class="kv"><span class="k">Swarm Type</span><div>{{cell .SwarmType}}</div></div>
      <div class="kv"><span class="k">Human Role</span><div>{{cell .HumanRole}}</div></div>
      <div class="kv"><span class="k">SA</span><div>
        <span class="{{badgeClass .SA1}}">{{token .SA1}}</span>
        <span class="{{badgeClass .SA2}}">{{token .SA2}}</span>
        <span class="{{badgeClass .SA3}}">{{token .SA3}}</span>
      </div></div>
      <div class="kv"><span class="k">Training / Model</span><div>
        Training: {{token .TrainingIncluded}}<br>
        Model: {{cell .ModelBasedSupport}}
      </div></div>
      {{if .Open}}
      <div class="kv"><span class="k">Training Type</span><div>{{cell .TrainingType}}</div></div>
      <div class="kv"><span class="k">Interface / Visualization</span><div>{{cell .InterfaceVisualization}}</div></div>
      <div class="kv"><span class="k">Evaluation</span><div>{{cell .EvaluationMetricsRaw}}</div>
        {{if .EvaluationMetrics}}{{range .EvaluationMetrics}}<span class="pill">{{.}}</span>{{end}}{{else}}<span class="pill">—</span>{{end}}
      </div>
      <div class="kv"><span class="k">Key Contribution</span><div>{{cell .KeyContribution}}</div></div>
      <div class="kv"><span class="k">Main Limitation</span><div>{{cell .MainLimitation}}</div></div>
      <div class="kv"><span class="k">Relevance to PhD</span><div>{{cell .RelevanceToPhD}}</div></div>
      {{end}}
    </article>
    {{end}}
  </div>
</div>
{{end}}`
