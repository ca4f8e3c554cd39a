package emitter

import "fmt"

// ViteIndex returns the index.html of a Vite project that mounts entry into
// the element with id mountID.
func ViteIndex(title, mountID, entry string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body>
  <div id="%s"></div>
  <script type="module" src="%s"></script>
</body>
</html>
`, EscapeHTML(title), mountID, entry)
}

// ViteConfig returns a vite.config.js using one framework plugin.
func ViteConfig(pluginImport, pluginCall string) string {
	return fmt.Sprintf(`import { defineConfig } from 'vite';
%s

export default defineConfig({
  plugins: [%s],
});
`, pluginImport, pluginCall)
}
