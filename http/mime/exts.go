package mime

// Extension maps lower-cased file extensions (including the leading dot) onto MIMEs.
var Extension = Table{
	".avif": AVIF,
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JavaScript,
	".mjs":  JavaScript,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".gz":   GZIP,
	".sql":  SQL,
	".tzif": TZIF,
	".yaml": YAML,
	".yml":  YAML,
	".xfdf": XFDF,
	".zip":  ZIP,
	".zlib": ZLIB,
	".zstd": ZSTD,
	".ico":  ICO,
}
