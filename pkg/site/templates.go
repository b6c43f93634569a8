package site

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>nxdk_pgraph_tests results</title>
    <link rel="stylesheet" href="{{.CSSDir}}/site.css">
    <script src="{{.JSDir}}/script.js" defer></script>
</head>
<body>
    <header class="title-bar">
        <h1>nxdk_pgraph_tests golden results</h1>
    </header>
    <main>
        <p class="subtitle">{{len .Suites}} test suites</p>
        <ul class="suite-list">
{{- range .Suites}}
            <li><a href="{{.URL}}">{{.Name}}</a></li>
{{- end}}
        </ul>
    </main>
</body>
</html>
`

const suitePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.SuiteName}} results</title>
    <link rel="stylesheet" href="{{.CSSDir}}/site.css">
    <script src="{{.JSDir}}/script.js" defer></script>
</head>
<body>
    <header class="title-bar">
        <h1>{{.SuiteName}}</h1>
        <a class="home-link" href="{{.HomeURL}}">All suites</a>
    </header>
    <main>
{{- with .Descriptor}}
        <section class="descriptor">
{{- range .Description}}
            <p>{{.}}</p>
{{- end}}
{{- if .SourceURL}}
            <p class="source-link">Source: <a href="{{.SourceURL}}">{{.SourceFile}}</a></p>
{{- else if .SourceFile}}
            <p class="source-link">Source: {{.SourceFile}}</p>
{{- end}}
        </section>
{{- end}}
{{- range .Results}}
        <section class="test-result" id="{{.Name}}">
            <h2>{{.Name}}</h2>
{{- if .Description}}
            <p class="test-description">{{.Description}}</p>
{{- end}}
            <figure class="comparison">
                <img src="{{.URL}}" alt="{{.Name}}"
                     data-url="{{.URL}}" data-no-alpha-url="{{.NoAlphaURL}}">
                <figcaption>
                    <button type="button" class="alpha-toggle" onclick="toggleAlpha(this)">Hide alpha</button>
                </figcaption>
            </figure>
        </section>
{{- end}}
    </main>
</body>
</html>
`

const cssTemplate = `:root {
    --title-bar-height: {{.TitleBarHeight}}px;
    --golden-outline-size: {{.ComparisonGoldenOutlineSize}}px;
    --bg: #1b1b1b;
    --fg: #e6e6e6;
    --accent: #76b900;
    --muted: #9a9a9a;
}

* {
    box-sizing: border-box;
    margin: 0;
    padding: 0;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: var(--bg);
    color: var(--fg);
    line-height: 1.5;
}

.title-bar {
    display: flex;
    align-items: center;
    gap: 16px;
    min-height: var(--title-bar-height);
    padding: 8px 16px;
    border-bottom: 1px solid var(--muted);
}

.title-bar h1 {
    font-size: 18px;
    font-weight: 600;
}

.home-link {
    color: var(--accent);
    text-decoration: none;
}

.home-link:hover {
    text-decoration: underline;
}

main {
    padding: 16px;
}

.subtitle {
    color: var(--muted);
    margin-bottom: 12px;
}

.suite-list {
    list-style: none;
    columns: 3 240px;
}

.suite-list a {
    color: var(--accent);
    text-decoration: none;
}

.suite-list a:hover {
    text-decoration: underline;
}

.descriptor {
    margin-bottom: 24px;
    color: var(--muted);
}

.descriptor .source-link a {
    color: var(--accent);
}

.test-result {
    margin-bottom: 32px;
}

.test-result h2 {
    font-size: 15px;
    margin-bottom: 4px;
}

.test-description {
    color: var(--muted);
    margin-bottom: 8px;
}

.comparison img {
    max-width: 100%;
    outline: var(--golden-outline-size) solid transparent;
}

.comparison img.no-alpha {
    outline-color: var(--accent);
}

.alpha-toggle {
    margin-top: 4px;
    padding: 2px 10px;
    background: transparent;
    color: var(--accent);
    border: 1px solid var(--accent);
    border-radius: 3px;
    cursor: pointer;
}
`

const scriptJS = `// Toggles a comparison image between its alpha and no-alpha renderings.
function toggleAlpha(button) {
    const img = button.closest('figure').querySelector('img');
    const showingAlpha = img.src === img.dataset.url || !img.classList.contains('no-alpha');

    if (showingAlpha) {
        img.src = img.dataset.noAlphaUrl;
        img.classList.add('no-alpha');
        button.textContent = 'Show alpha';
    } else {
        img.src = img.dataset.url;
        img.classList.remove('no-alpha');
        button.textContent = 'Hide alpha';
    }
}
`
