package web

import _ "embed"

// indexHTML is the single-page upload UI served at /.
//
//go:embed index.html
var indexHTML []byte
