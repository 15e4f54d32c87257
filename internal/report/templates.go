package report

// htmlTemplate is the main HTML template for the report. It renders the
// same four panels as the classic visualization: latency over the request
// sequence, status-code distribution, cumulative success rate, and the
// rate-limit remaining trend.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - API Test Report</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --bg-secondary: #f8fafc;
            --bg-card: #ffffff;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
            --accent-success: #22c55e;
            --accent-error: #ef4444;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        header {
            margin-bottom: 2rem;
        }

        header h1 {
            font-size: 1.75rem;
        }

        header p {
            color: var(--text-secondary);
        }

        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 1rem;
            margin-bottom: 2rem;
        }

        .stat {
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            box-shadow: var(--shadow);
            padding: 1rem;
        }

        .stat .label {
            color: var(--text-secondary);
            font-size: 0.8rem;
            text-transform: uppercase;
        }

        .stat .value {
            font-size: 1.5rem;
            font-weight: 600;
        }

        .stat .value.ok { color: var(--accent-success); }
        .stat .value.bad { color: var(--accent-error); }

        .charts {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(480px, 1fr));
            gap: 1rem;
            margin-bottom: 2rem;
        }

        .chart-card {
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            box-shadow: var(--shadow);
            padding: 1rem;
        }

        .chart-card h2 {
            font-size: 1rem;
            margin-bottom: 0.5rem;
        }

        table {
            width: 100%;
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            border-collapse: collapse;
            box-shadow: var(--shadow);
        }

        th, td {
            text-align: left;
            padding: 0.6rem 1rem;
            border-bottom: 1px solid var(--border-color);
        }

        th {
            color: var(--text-secondary);
            font-size: 0.8rem;
            text-transform: uppercase;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Name}}</h1>
            <p>Generated {{.GeneratedAt}}</p>
        </header>

        <section class="summary">
            <div class="stat">
                <div class="label">Total Requests</div>
                <div class="value">{{.Overall.Count}}</div>
            </div>
            <div class="stat">
                <div class="label">Success Rate</div>
                <div class="value {{if ge .Overall.SuccessRate 0.99}}ok{{else}}bad{{end}}">{{percent .Overall.SuccessRate}}</div>
            </div>
            {{if .Overall.Latency}}
            <div class="stat">
                <div class="label">Avg Latency</div>
                <div class="value">{{millis .Overall.Latency.Mean}}</div>
            </div>
            <div class="stat">
                <div class="label">Max Latency</div>
                <div class="value">{{millis .Overall.Latency.Max}}</div>
            </div>
            {{end}}
            {{if .Overall.FinalRemaining}}
            <div class="stat">
                <div class="label">Rate Limit Remaining</div>
                <div class="value">{{.Overall.FinalRemaining}}</div>
            </div>
            {{end}}
        </section>

        <section class="charts">
            <div class="chart-card">
                <h2>Response Times Over Request Sequence</h2>
                <canvas id="latencyChart"></canvas>
            </div>
            <div class="chart-card">
                <h2>Status Code Distribution</h2>
                <canvas id="statusChart"></canvas>
            </div>
            <div class="chart-card">
                <h2>Cumulative Success Rate</h2>
                <canvas id="successChart"></canvas>
            </div>
            <div class="chart-card">
                <h2>Rate Limit Remaining</h2>
                <canvas id="rateLimitChart"></canvas>
            </div>
        </section>

        <section>
            <table>
                <thead>
                    <tr>
                        <th>Pattern</th>
                        <th>Requests</th>
                        <th>Success Rate</th>
                        <th>Avg Latency</th>
                        <th>Max Latency</th>
                    </tr>
                </thead>
                <tbody>
                    {{range $pattern, $metrics := .ByPattern}}
                    <tr>
                        <td>{{$pattern}}</td>
                        <td>{{$metrics.Count}}</td>
                        <td>{{percent $metrics.SuccessRate}}</td>
                        {{if $metrics.Latency}}
                        <td>{{millis $metrics.Latency.Mean}}</td>
                        <td>{{millis $metrics.Latency.Max}}</td>
                        {{else}}
                        <td>n/a</td>
                        <td>n/a</td>
                        {{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </section>
    </div>

    <script>
        const records = {{.RecordsJSON}};
        const sequence = records.map(r => r.sequence + 1);

        new Chart(document.getElementById('latencyChart'), {
            type: 'line',
            data: {
                labels: sequence,
                datasets: [{
                    label: 'Latency (ms)',
                    data: records.map(r => r.latencyMs),
                    borderColor: '#3b82f6',
                    backgroundColor: 'rgba(59, 130, 246, 0.2)',
                    tension: 0.2
                }]
            },
            options: { scales: { y: { beginAtZero: true } } }
        });

        const statusCounts = {};
        records.forEach(r => { statusCounts[r.status] = (statusCounts[r.status] || 0) + 1; });
        new Chart(document.getElementById('statusChart'), {
            type: 'bar',
            data: {
                labels: Object.keys(statusCounts),
                datasets: [{
                    label: 'Requests',
                    data: Object.values(statusCounts),
                    backgroundColor: Object.keys(statusCounts).map(s => s === '200' ? '#22c55e' : '#ef4444')
                }]
            },
            options: { plugins: { legend: { display: false } } }
        });

        let successes = 0;
        const cumulative = records.map((r, i) => {
            if (r.success) successes++;
            return successes / (i + 1) * 100;
        });
        new Chart(document.getElementById('successChart'), {
            type: 'line',
            data: {
                labels: sequence,
                datasets: [{
                    label: 'Success rate (%)',
                    data: cumulative,
                    borderColor: '#22c55e',
                    tension: 0.2
                }]
            },
            options: { scales: { y: { min: 0, max: 100 } } }
        });

        const ratePoints = records.filter(r => r.remaining !== null);
        new Chart(document.getElementById('rateLimitChart'), {
            type: 'line',
            data: {
                labels: ratePoints.map(r => r.sequence + 1),
                datasets: [{
                    label: 'Remaining',
                    data: ratePoints.map(r => r.remaining),
                    borderColor: '#f59e0b',
                    tension: 0.2
                }]
            }
        });
    </script>
</body>
</html>`
